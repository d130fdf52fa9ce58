package forms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for the tag-based rules (required, min/max,
// email). Custom shapes (username, phone) use plain regexps.
var validate = validator.New()

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phoneRe    = regexp.MustCompile(`^[0-9]{10,11}$`)
)

// Rule wraps a go-playground/validator tag expression, returning msg when the
// value fails it. Comparison tags (gt, lte, ...) applied to a string compare
// its length, not its numeric value; numeric bounds go through NumberRange or
// IntMin instead.
func Rule(tag, msg string) Validator {
	return func(value string, _ *State) string {
		if err := validate.Var(value, tag); err != nil {
			return msg
		}
		return ""
	}
}

// NumberRange parses the value and checks it against an inclusive range.
// Unparseable input fails the rule.
func NumberRange(lo, hi float64, msg string) Validator {
	return func(value string, _ *State) string {
		if value == "" {
			return ""
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || n < lo || n > hi {
			return msg
		}
		return ""
	}
}

// IntMin parses the value as an integer with a lower bound. Unparseable
// input, including fractional numbers, fails the rule.
func IntMin(lo int, msg string) Validator {
	return func(value string, _ *State) string {
		if value == "" {
			return ""
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < lo {
			return msg
		}
		return ""
	}
}

// Required rejects blank (all-whitespace) values.
func Required(msg string) Validator {
	return func(value string, _ *State) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// MinLen applies only to non-empty values; pair with Required when the field
// is mandatory.
func MinLen(n int, msg string) Validator {
	return func(value string, _ *State) string {
		if value != "" && len([]rune(value)) < n {
			return msg
		}
		return ""
	}
}

func MaxLen(n int, msg string) Validator {
	return func(value string, _ *State) string {
		if len([]rune(value)) > n {
			return msg
		}
		return ""
	}
}

// Email validates non-empty values against the standard email shape.
func Email(msg string) Validator {
	return func(value string, _ *State) string {
		if value == "" {
			return ""
		}
		if err := validate.Var(value, "email"); err != nil {
			return msg
		}
		return ""
	}
}

// Username: letters, digits and underscore only.
func Username(msg string) Validator {
	return match(usernameRe, msg)
}

// Phone: 10 or 11 digits.
func Phone(msg string) Validator {
	return match(phoneRe, msg)
}

func match(re *regexp.Regexp, msg string) Validator {
	return func(value string, _ *State) string {
		if value == "" {
			return ""
		}
		if !re.MatchString(value) {
			return msg
		}
		return ""
	}
}

// EqualsField: cross-field equality, e.g. confirm-password against password.
func EqualsField(other, msg string) Validator {
	return func(value string, s *State) string {
		if value != s.Value(other) {
			return msg
		}
		return ""
	}
}

// RequiredIf makes a field mandatory only when cond holds, e.g. password
// required on create but optional on edit.
func RequiredIf(cond func() bool, msg string) Validator {
	return func(value string, _ *State) string {
		if cond() && strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}
