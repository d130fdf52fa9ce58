package backend

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Banner struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
	Position    int    `json:"position"`
	Type        string `json:"type"`
	CreatedDate string `json:"createdDate"`
	UpdateDate  string `json:"updateDate"`
}

// BannerPayload feeds the multipart create/update endpoints. File is
// optional on update (keep the existing image).
type BannerPayload struct {
	File     *Upload
	IsActive bool
	Position int
	Type     string
}

type Banners struct{ c *Client }

func (c *Client) Banners() Banners { return Banners{c} }

func (a Banners) List(ctx context.Context, p ListParams) (Page[Banner], error) {
	return list[Banner](ctx, a.c, "/Banner", "Type", p)
}

func (a Banners) Get(ctx context.Context, id string) (Banner, error) {
	return getByID[Banner](ctx, a.c, "/Banner", id)
}

func (a Banners) Create(ctx context.Context, in BannerPayload) (Banner, error) {
	if in.File == nil {
		return Banner{}, ErrMissingImage
	}
	raw, err := a.c.sendMultipart(ctx, http.MethodPost, "/Banner", func(mw *multipart.Writer) error {
		if err := writeFilePart(mw, "File", in.File); err != nil {
			return err
		}
		return writeBannerFields(mw, in, "CreatedDate")
	})
	if err != nil {
		return Banner{}, err
	}
	return decodeRecord[Banner](raw)
}

func (a Banners) Update(ctx context.Context, id string, in BannerPayload) (Banner, error) {
	raw, err := a.c.sendMultipart(ctx, http.MethodPut, "/Banner/"+url.PathEscape(id), func(mw *multipart.Writer) error {
		if in.File != nil {
			if err := writeFilePart(mw, "File", in.File); err != nil {
				return err
			}
		}
		return writeBannerFields(mw, in, "UpdateDate")
	})
	if err != nil {
		return Banner{}, err
	}
	return decodeRecord[Banner](raw)
}

func (a Banners) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/Banner", id)
}

func writeBannerFields(mw *multipart.Writer, in BannerPayload, dateField string) error {
	if err := mw.WriteField("IsActive", strconv.FormatBool(in.IsActive)); err != nil {
		return err
	}
	if err := mw.WriteField("Position", strconv.Itoa(in.Position)); err != nil {
		return err
	}
	if err := mw.WriteField("Type", in.Type); err != nil {
		return err
	}
	return mw.WriteField(dateField, time.Now().UTC().Format(time.RFC3339))
}
