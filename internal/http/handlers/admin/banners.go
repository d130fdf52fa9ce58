package admin

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
)

// BannerTypes the dashboard may assign.
var BannerTypes = []string{"hero", "sidebar", "footer"}

func bannerForm(edit bool) *forms.State {
	return forms.New(
		forms.Field{Name: "file", Validators: []forms.Validator{
			forms.RequiredIf(func() bool { return !edit }, "Banner image is required"),
		}},
		forms.Field{Name: "position", Validators: []forms.Validator{
			forms.Required("Position is required"),
			forms.IntMin(0, "Position must be a non-negative number"),
		}},
		forms.Field{Name: "type", Validators: []forms.Validator{
			forms.Required("Banner type is required"),
			forms.Rule("oneof=hero sidebar footer", "Banner type must be hero, sidebar or footer"),
		}},
		forms.Field{Name: "isActive"},
	)
}

// NewBannersManager: banners write through the multipart endpoint, so the
// payload is built from the request rather than from form values alone. The
// file is validated (image type, <=5MB) before any upload happens.
func NewBannersManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.Banner, backend.BannerPayload] {
	api := client.Banners()
	return manager.New(manager.Config[backend.Banner, backend.BannerPayload]{
		Name:         "Banner",
		Plural:       "Banners",
		BasePath:     "/admin/banners",
		ListTemplate: "admin_banners_list",
		FormTemplate: "admin_banners_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		ID:   func(r backend.Banner) string { return strconv.Itoa(r.ID) },
		Form: bannerForm,
		SeedFrom: func(r backend.Banner) map[string]string {
			return map[string]string{
				"file":     r.ImageURL, // existing image satisfies the edit form
				"position": strconv.Itoa(r.Position),
				"type":     r.Type,
				"isActive": strconv.FormatBool(r.IsActive),
			}
		},

		FormValues: func(c *gin.Context, fields []string) map[string]string {
			vals := map[string]string{
				"position": c.PostForm("position"),
				"type":     c.PostForm("type"),
				"isActive": c.PostForm("isActive"),
			}
			if fh, err := c.FormFile("file"); err == nil && fh != nil {
				vals["file"] = fh.Filename
			}
			return vals
		},
		PayloadFromRequest: func(c *gin.Context, v map[string]string) (backend.BannerPayload, error) {
			out := backend.BannerPayload{
				IsActive: checked(v["isActive"]),
				Position: atoiOr(v["position"], 0),
				Type:     v["type"],
			}
			fh, err := c.FormFile("file")
			if err != nil {
				// No new file on edit: keep the existing image.
				return out, nil
			}
			up, err := uploadFromHeader(fh)
			if err != nil {
				return out, err
			}
			out.File = up
			return out, nil
		},

		FormData: func(*gin.Context) gin.H {
			return gin.H{"Types": BannerTypes}
		},

		Toggle: func(r backend.Banner) backend.BannerPayload {
			return backend.BannerPayload{
				IsActive: !r.IsActive,
				Position: r.Position,
				Type:     r.Type,
			}
		},
		IsActive: func(r backend.Banner) bool { return r.IsActive },
	}, codec, log)
}

// uploadFromHeader buffers one uploaded file. The size check runs before the
// read so an oversized file is rejected without being pulled into memory.
func uploadFromHeader(fh *multipart.FileHeader) (*backend.Upload, error) {
	up := &backend.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
	if err := up.Validate(); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	up.Reader = bytes.NewReader(data)
	return up, nil
}
