package admin

import (
	"log/slog"
	"strconv"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

// userForm: password is required on create, optional on edit; confirm must
// always match whatever was typed.
func userForm(edit bool) *forms.State {
	return forms.New(
		forms.Field{Name: "userName", Validators: []forms.Validator{
			forms.Required("Username is required"),
			forms.MinLen(2, "Username must be at least 2 characters"),
			forms.MaxLen(100, "Username must be at most 100 characters"),
			forms.Username("Username may only contain letters, digits and underscores"),
		}},
		forms.Field{Name: "email", Validators: []forms.Validator{
			forms.Required("Email is required"),
			forms.Email("Enter a valid email address"),
		}},
		forms.Field{Name: "phoneNumber", Validators: []forms.Validator{
			forms.Phone("Phone number must be 10 or 11 digits"),
		}},
		forms.Field{Name: "password", Validators: []forms.Validator{
			forms.RequiredIf(func() bool { return !edit }, "Password is required"),
			forms.MinLen(6, "Password must be at least 6 characters"),
		}},
		forms.Field{Name: "confirmPassword", Validators: []forms.Validator{
			forms.EqualsField("password", "Passwords do not match"),
		}},
		forms.Field{Name: "isActive"},
	)
}

func NewUsersManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.User, backend.UserPayload] {
	api := client.Users()
	return manager.New(manager.Config[backend.User, backend.UserPayload]{
		Name:         "User",
		Plural:       "Users",
		BasePath:     "/admin/users",
		ListTemplate: "admin_users_list",
		FormTemplate: "admin_users_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.User) string { return r.ID },
		Form: userForm,
		SeedFrom: func(r backend.User) map[string]string {
			return map[string]string{
				"userName":    r.UserName,
				"email":       r.Email,
				"phoneNumber": r.PhoneNumber,
				"isActive":    strconv.FormatBool(r.IsActive),
			}
		},
		Payload: func(v map[string]string) (backend.UserPayload, error) {
			return backend.UserPayload{
				UserName:    v["userName"],
				Email:       v["email"],
				PhoneNumber: v["phoneNumber"],
				Password:    v["password"], // omitted from JSON when empty
				IsActive:    checked(v["isActive"]),
			}, nil
		},
	}, codec, log)
}
