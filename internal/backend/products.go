package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
)

type VariantImage struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type Variant struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Price  float64        `json:"price"`
	Stock  int            `json:"stock"`
	Images []VariantImage `json:"images"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int       `json:"categoryId"`
	IsActive    bool      `json:"isActive"`
	Variants    []Variant `json:"variants"`
}

type ProductPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`
	IsActive    bool   `json:"isActive"`
}

type Products struct{ c *Client }

func (c *Client) Products() Products { return Products{c} }

func (a Products) List(ctx context.Context, p ListParams) (Page[Product], error) {
	return list[Product](ctx, a.c, "/Product", "Name", p)
}

func (a Products) ByCategory(ctx context.Context, categoryID string, p ListParams) (Page[Product], error) {
	return list[Product](ctx, a.c, "/Product/category/"+url.PathEscape(categoryID), "Name", p)
}

func (a Products) Get(ctx context.Context, id string) (Product, error) {
	return getByID[Product](ctx, a.c, "/Product", id)
}

func (a Products) Create(ctx context.Context, in ProductPayload) (Product, error) {
	return create[Product](ctx, a.c, "/Product", in)
}

func (a Products) Update(ctx context.Context, id string, in ProductPayload) (Product, error) {
	return update[Product](ctx, a.c, "/Product", id, in)
}

func (a Products) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/Product", id)
}

// UploadImages posts one or more image files for a variant. Each file is
// validated locally (image MIME type, <=5MB) before the request is built.
func (a Products) UploadImages(ctx context.Context, productID, variantID string, files []*Upload) error {
	if len(files) == 0 {
		return ErrMissingImage
	}
	path := fmt.Sprintf("/Product/%s/variants/%s/images", url.PathEscape(productID), url.PathEscape(variantID))
	_, err := a.c.sendMultipart(ctx, http.MethodPost, path, func(mw *multipart.Writer) error {
		for _, f := range files {
			if err := writeFilePart(mw, "Files", f); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

func (a Products) DeleteImage(ctx context.Context, productID, imageID string) error {
	path := fmt.Sprintf("/Product/%s/images/%s", url.PathEscape(productID), url.PathEscape(imageID))
	return a.c.deleteRaw(ctx, path)
}

// SetMainImage flags one image as the variant's main image. The backend
// unsets the previous main; callers must refetch the product afterwards
// rather than patching locally.
func (a Products) SetMainImage(ctx context.Context, productID, imageID string) error {
	path := fmt.Sprintf("/Product/%s/images/%s/main", url.PathEscape(productID), url.PathEscape(imageID))
	_, err := a.c.do(ctx, http.MethodPut, path, nil, nil, "")
	return err
}
