package admin

import (
	"log/slog"
	"strconv"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

func promotionForm(bool) *forms.State {
	return forms.New(
		forms.Field{Name: "name", Validators: []forms.Validator{
			forms.Required("Promotion name is required"),
			forms.MinLen(2, "Promotion name must be at least 2 characters"),
			forms.MaxLen(100, "Promotion name must be at most 100 characters"),
		}},
		forms.Field{Name: "description", Validators: []forms.Validator{
			forms.MaxLen(500, "Description must be at most 500 characters"),
		}},
		forms.Field{Name: "discountPercent", Validators: []forms.Validator{
			forms.Required("Discount percentage is required"),
			forms.NumberRange(1, 100, "Discount must be a number between 1 and 100"),
		}},
		forms.Field{Name: "startDate", Validators: []forms.Validator{
			forms.Required("Start date is required"),
			forms.Rule("datetime=2006-01-02", "Start date must be YYYY-MM-DD"),
		}},
		forms.Field{Name: "endDate", Validators: []forms.Validator{
			forms.Required("End date is required"),
			forms.Rule("datetime=2006-01-02", "End date must be YYYY-MM-DD"),
		}},
		forms.Field{Name: "isActive"},
	)
}

// NewPromotionsManager: promotions carry the active toggle, so rows can be
// switched on and off in place.
func NewPromotionsManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.Promotion, backend.PromotionPayload] {
	api := client.Promotions()
	return manager.New(manager.Config[backend.Promotion, backend.PromotionPayload]{
		Name:         "Promotion",
		Plural:       "Promotions",
		BasePath:     "/admin/promotions",
		ListTemplate: "admin_promotions_list",
		FormTemplate: "admin_promotions_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.Promotion) string { return strconv.Itoa(r.ID) },
		Form: promotionForm,
		SeedFrom: func(r backend.Promotion) map[string]string {
			return map[string]string{
				"name":            r.Name,
				"description":     r.Description,
				"discountPercent": strconv.FormatFloat(r.DiscountPercent, 'f', -1, 64),
				"startDate":       r.StartDate,
				"endDate":         r.EndDate,
				"isActive":        strconv.FormatBool(r.IsActive),
			}
		},
		Payload: func(v map[string]string) (backend.PromotionPayload, error) {
			pct, err := strconv.ParseFloat(v["discountPercent"], 64)
			if err != nil {
				return backend.PromotionPayload{}, err
			}
			return backend.PromotionPayload{
				Name:            v["name"],
				Description:     v["description"],
				DiscountPercent: pct,
				StartDate:       v["startDate"],
				EndDate:         v["endDate"],
				IsActive:        checked(v["isActive"]),
			}, nil
		},

		Toggle: func(r backend.Promotion) backend.PromotionPayload {
			return backend.PromotionPayload{
				Name:            r.Name,
				Description:     r.Description,
				DiscountPercent: r.DiscountPercent,
				StartDate:       r.StartDate,
				EndDate:         r.EndDate,
				IsActive:        !r.IsActive,
			}
		},
		IsActive: func(r backend.Promotion) bool { return r.IsActive },
	}, codec, log)
}
