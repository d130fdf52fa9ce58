package admin

import (
	"log/slog"
	"strconv"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

func brewingMethodForm(bool) *forms.State {
	return forms.New(
		forms.Field{Name: "name", Validators: []forms.Validator{
			forms.Required("Brewing method name is required"),
			forms.MinLen(2, "Brewing method name must be at least 2 characters"),
			forms.MaxLen(100, "Brewing method name must be at most 100 characters"),
		}},
		forms.Field{Name: "description", Validators: []forms.Validator{
			forms.MaxLen(500, "Description must be at most 500 characters"),
		}},
	)
}

func NewBrewingMethodsManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.BrewingMethod, backend.BrewingMethodPayload] {
	api := client.BrewingMethods()
	return manager.New(manager.Config[backend.BrewingMethod, backend.BrewingMethodPayload]{
		Name:         "Brewing method",
		Plural:       "Brewing methods",
		BasePath:     "/admin/brewing-methods",
		ListTemplate: "admin_brewing_list",
		FormTemplate: "admin_brewing_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.BrewingMethod) string { return strconv.Itoa(r.ID) },
		Form: brewingMethodForm,
		SeedFrom: func(r backend.BrewingMethod) map[string]string {
			return map[string]string{"name": r.Name, "description": r.Description}
		},
		Payload: func(v map[string]string) (backend.BrewingMethodPayload, error) {
			return backend.BrewingMethodPayload{Name: v["name"], Description: v["description"]}, nil
		},
	}, codec, log)
}
