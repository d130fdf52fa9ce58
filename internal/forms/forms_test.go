package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameForm() *State {
	return New(
		Field{Name: "name", Validators: []Validator{
			Required("Name is required"),
			MinLen(2, "Name is too short"),
			MaxLen(10, "Name is too long"),
		}},
		Field{Name: "description", Validators: []Validator{
			MaxLen(20, "Description is too long"),
		}},
	)
}

func TestErrorsHiddenUntilTouched(t *testing.T) {
	st := nameForm()
	st.Set("name", "")

	assert.Empty(t, st.VisibleError("name"), "untouched fields never show errors")

	st.Touch("name")
	assert.Equal(t, "Name is required", st.VisibleError("name"))
}

func TestSetRevalidatesOnlyTouchedFields(t *testing.T) {
	st := nameForm()

	st.Set("name", "x")
	assert.Empty(t, st.VisibleError("name"))

	st.Touch("name")
	assert.Equal(t, "Name is too short", st.VisibleError("name"))

	// once touched, every keystroke recomputes
	st.Set("name", "espresso")
	assert.Empty(t, st.VisibleError("name"))
	st.Set("name", "e")
	assert.Equal(t, "Name is too short", st.VisibleError("name"))
}

func TestSubmitShowsAllErrors(t *testing.T) {
	st := nameForm()
	st.Seed(map[string]string{"name": "", "description": "this description is far too long"})

	ok := st.Submit()
	require.False(t, ok)
	assert.Equal(t, "Name is required", st.VisibleError("name"))
	assert.Equal(t, "Description is too long", st.VisibleError("description"))
	assert.Len(t, st.Errors(), 2)
}

func TestSubmitIsIdempotent(t *testing.T) {
	st := nameForm()
	st.Seed(map[string]string{"name": "ok"})

	assert.True(t, st.Submit())
	assert.True(t, st.Submit())
	assert.Empty(t, st.Errors())
}

func TestSeedDoesNotValidate(t *testing.T) {
	st := nameForm()
	st.Seed(map[string]string{"name": ""})

	assert.Empty(t, st.Errors(), "seeding an edit form must not surface errors")
	assert.Empty(t, st.VisibleError("name"))
}

func TestReset(t *testing.T) {
	st := nameForm()
	st.Touch("name")
	require.NotEmpty(t, st.VisibleError("name"))

	st.Reset()
	assert.Empty(t, st.VisibleError("name"))
	assert.Empty(t, st.Value("name"))

	// reset also clears the submitted gate
	st.Set("name", "")
	assert.Empty(t, st.VisibleError("name"))
}

func TestEqualsField(t *testing.T) {
	st := New(
		Field{Name: "password"},
		Field{Name: "confirmPassword", Validators: []Validator{
			EqualsField("password", "Passwords do not match"),
		}},
	)
	st.Seed(map[string]string{"password": "secret", "confirmPassword": "other"})

	require.False(t, st.Submit())
	assert.Equal(t, "Passwords do not match", st.VisibleError("confirmPassword"))

	st.Set("confirmPassword", "secret")
	assert.True(t, st.Submit())
}

func TestRequiredIf(t *testing.T) {
	edit := false
	form := func() *State {
		return New(Field{Name: "password", Validators: []Validator{
			RequiredIf(func() bool { return !edit }, "Password is required"),
			MinLen(6, "Password is too short"),
		}})
	}

	st := form()
	require.False(t, st.Submit(), "create mode requires a password")

	edit = true
	st = form()
	assert.True(t, st.Submit(), "edit mode accepts an empty password")

	// but a short non-empty password still fails in edit mode
	st = form()
	st.Seed(map[string]string{"password": "abc"})
	assert.False(t, st.Submit())
}

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		value   string
		wantErr bool
	}{
		{"email valid", Email("bad"), "a@b.co", false},
		{"email invalid", Email("bad"), "not-an-email", true},
		{"email empty ok", Email("bad"), "", false},
		{"username valid", Username("bad"), "brew_master1", false},
		{"username invalid", Username("bad"), "brew master", true},
		{"phone valid", Phone("bad"), "05321234567", false},
		{"phone short", Phone("bad"), "12345", true},
		{"rule date ok", Rule("datetime=2006-01-02", "bad"), "2026-08-01", false},
		{"rule date bad", Rule("datetime=2006-01-02", "bad"), "01/08/2026", true},
		{"range ok", NumberRange(1, 100, "bad"), "25.5", false},
		{"range lower bound", NumberRange(1, 100, "bad"), "1", false},
		{"range upper bound", NumberRange(1, 100, "bad"), "100", false},
		{"range over", NumberRange(1, 100, "bad"), "150", true},
		{"range far over", NumberRange(1, 100, "bad"), "99999", true},
		{"range zero", NumberRange(1, 100, "bad"), "0", true},
		{"range not a number", NumberRange(1, 100, "bad"), "abc", true},
		{"range empty ok", NumberRange(1, 100, "bad"), "", false},
		{"intmin ok", IntMin(0, "bad"), "0", false},
		{"intmin positive", IntMin(0, "bad"), "7", false},
		{"intmin negative", IntMin(0, "bad"), "-5", true},
		{"intmin fractional", IntMin(0, "bad"), "1.5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.v(tt.value, nil)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
