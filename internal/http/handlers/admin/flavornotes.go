package admin

import (
	"log/slog"
	"strconv"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

func flavorNoteForm(bool) *forms.State {
	return forms.New(
		forms.Field{Name: "name", Validators: []forms.Validator{
			forms.Required("Flavor note name is required"),
			forms.MinLen(2, "Flavor note name must be at least 2 characters"),
			forms.MaxLen(100, "Flavor note name must be at most 100 characters"),
		}},
		forms.Field{Name: "description", Validators: []forms.Validator{
			forms.MaxLen(500, "Description must be at most 500 characters"),
		}},
	)
}

func NewFlavorNotesManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.FlavorNote, backend.FlavorNotePayload] {
	api := client.FlavorNotes()
	return manager.New(manager.Config[backend.FlavorNote, backend.FlavorNotePayload]{
		Name:         "Flavor note",
		Plural:       "Flavor notes",
		BasePath:     "/admin/flavor-notes",
		ListTemplate: "admin_flavornotes_list",
		FormTemplate: "admin_flavornotes_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.FlavorNote) string { return strconv.Itoa(r.ID) },
		Form: flavorNoteForm,
		SeedFrom: func(r backend.FlavorNote) map[string]string {
			return map[string]string{"name": r.Name, "description": r.Description}
		},
		Payload: func(v map[string]string) (backend.FlavorNotePayload, error) {
			return backend.FlavorNotePayload{Name: v["name"], Description: v["description"]}, nil
		},
	}, codec, log)
}
