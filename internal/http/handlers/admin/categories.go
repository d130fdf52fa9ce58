package admin

import (
	"log/slog"
	"strconv"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

func categoryForm(bool) *forms.State {
	return forms.New(
		forms.Field{Name: "name", Validators: []forms.Validator{
			forms.Required("Category name is required"),
			forms.MinLen(2, "Category name must be at least 2 characters"),
			forms.MaxLen(100, "Category name must be at most 100 characters"),
		}},
		forms.Field{Name: "description", Validators: []forms.Validator{
			forms.MaxLen(500, "Description must be at most 500 characters"),
		}},
		forms.Field{Name: "isActive"},
	)
}

// NewCategoriesManager wires /admin/categories into the generic workflow.
func NewCategoriesManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.Category, backend.CategoryPayload] {
	api := client.Categories()
	return manager.New(manager.Config[backend.Category, backend.CategoryPayload]{
		Name:         "Category",
		Plural:       "Categories",
		BasePath:     "/admin/categories",
		ListTemplate: "admin_categories_list",
		FormTemplate: "admin_categories_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.Category) string { return strconv.Itoa(r.ID) },
		Form: categoryForm,
		SeedFrom: func(r backend.Category) map[string]string {
			return map[string]string{
				"name":        r.Name,
				"description": r.Description,
				"isActive":    strconv.FormatBool(r.IsActive),
			}
		},
		Payload: func(v map[string]string) (backend.CategoryPayload, error) {
			return backend.CategoryPayload{
				Name:        v["name"],
				Description: v["description"],
				IsActive:    checked(v["isActive"]),
			}, nil
		},
	}, codec, log)
}
