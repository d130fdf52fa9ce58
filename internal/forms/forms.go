// Package forms models the create/edit form lifecycle: field values, their
// validators, which fields the user has touched and the submit-time sweep.
//
// Error visibility is deliberately gated: a field shows no error until it has
// been touched (blurred) once, except after a submit attempt, when every
// field shows its error regardless.
package forms

// Field pairs a name with its validator chain. Validators run in order and
// the first non-empty message wins.
type Field struct {
	Name       string
	Validators []Validator
}

// Validator returns an error message or "" for a valid value. The full state
// is passed so cross-field rules (confirm-password) can see their peers.
type Validator func(value string, s *State) string

type State struct {
	fields    []Field
	values    map[string]string
	errors    map[string]string
	touched   map[string]bool
	submitted bool
}

func New(fields ...Field) *State {
	return &State{
		fields:  fields,
		values:  make(map[string]string, len(fields)),
		errors:  make(map[string]string, len(fields)),
		touched: make(map[string]bool, len(fields)),
	}
}

// Seed fills values without touching or validating, used to pre-populate an
// edit form from an existing record.
func (s *State) Seed(values map[string]string) *State {
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *State) Value(name string) string { return s.values[name] }

// Fields lists the declared field names in order.
func (s *State) Fields() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Set updates a value. The field is revalidated only if already touched, so
// errors never flash while the user is still typing in a fresh field.
func (s *State) Set(name, value string) {
	s.values[name] = value
	if s.touched[name] {
		s.validateField(name)
	}
}

// Touch marks a field blurred and computes its error.
func (s *State) Touch(name string) {
	s.touched[name] = true
	s.validateField(name)
}

// Submit validates every field regardless of touched state and reports
// whether the form may proceed. No caller should issue a network call when
// this returns false.
func (s *State) Submit() bool {
	s.submitted = true
	ok := true
	for _, f := range s.fields {
		if msg := s.run(f); msg != "" {
			s.errors[f.Name] = msg
			ok = false
		} else {
			delete(s.errors, f.Name)
		}
	}
	return ok
}

// VisibleError returns the error to render for a field, honoring the
// touched/submitted gate.
func (s *State) VisibleError(name string) string {
	if !s.touched[name] && !s.submitted {
		return ""
	}
	return s.errors[name]
}

// Errors returns all currently visible errors.
func (s *State) Errors() map[string]string {
	out := make(map[string]string)
	for name, msg := range s.errors {
		if s.touched[name] || s.submitted {
			out[name] = msg
		}
	}
	return out
}

// Values returns a copy of the current values, e.g. to rebuild a payload.
func (s *State) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Reset restores initial state: values, errors and touched tracking are all
// dropped. Called after a successful submit.
func (s *State) Reset() {
	s.values = make(map[string]string, len(s.fields))
	s.errors = make(map[string]string, len(s.fields))
	s.touched = make(map[string]bool, len(s.fields))
	s.submitted = false
}

func (s *State) validateField(name string) {
	for _, f := range s.fields {
		if f.Name != name {
			continue
		}
		if msg := s.run(f); msg != "" {
			s.errors[name] = msg
		} else {
			delete(s.errors, name)
		}
		return
	}
}

func (s *State) run(f Field) string {
	v := s.values[f.Name]
	for _, check := range f.Validators {
		if msg := check(v, s); msg != "" {
			return msg
		}
	}
	return ""
}
