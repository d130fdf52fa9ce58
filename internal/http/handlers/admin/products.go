package admin

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/internal/http/render"
	"brewhaus.com/app/internal/shared/apperr"
	"brewhaus.com/app/pkg/view"
)

func productForm(bool) *forms.State {
	return forms.New(
		forms.Field{Name: "name", Validators: []forms.Validator{
			forms.Required("Product name is required"),
			forms.MinLen(2, "Product name must be at least 2 characters"),
			forms.MaxLen(100, "Product name must be at most 100 characters"),
		}},
		forms.Field{Name: "description", Validators: []forms.Validator{
			forms.MaxLen(500, "Description must be at most 500 characters"),
		}},
		forms.Field{Name: "categoryId", Validators: []forms.Validator{
			forms.Required("Category is required"),
			forms.Rule("number", "Category is invalid"),
		}},
		forms.Field{Name: "isActive"},
	)
}

func NewProductsManager(client *backend.Client, codec *flash.Codec, log *slog.Logger) *manager.Manager[backend.Product, backend.ProductPayload] {
	api := client.Products()
	return manager.New(manager.Config[backend.Product, backend.ProductPayload]{
		Name:         "Product",
		Plural:       "Products",
		BasePath:     "/admin/products",
		ListTemplate: "admin_products_list",
		FormTemplate: "admin_products_form",

		List:   api.List,
		Get:    api.Get,
		Create: api.Create,
		Update: api.Update,
		Delete: api.Delete,

		// The list narrows to one category when ?category= is present, via
		// the backend's per-category endpoint.
		ListFromRequest: func(c *gin.Context, p backend.ListParams) (backend.Page[backend.Product], error) {
			if cat := c.Query("category"); cat != "" {
				return api.ByCategory(c.Request.Context(), cat, p)
			}
			return api.List(c.Request.Context(), p)
		},
		Filter: func(c *gin.Context) url.Values {
			v := url.Values{}
			if cat := c.Query("category"); cat != "" {
				v.Set("category", cat)
			}
			return v
		},

		ID:   func(r backend.Product) string { return strconv.Itoa(r.ID) },
		Form: productForm,
		SeedFrom: func(r backend.Product) map[string]string {
			return map[string]string{
				"name":        r.Name,
				"description": r.Description,
				"categoryId":  strconv.Itoa(r.CategoryID),
				"isActive":    strconv.FormatBool(r.IsActive),
			}
		},
		Payload: func(v map[string]string) (backend.ProductPayload, error) {
			catID, err := strconv.Atoi(v["categoryId"])
			if err != nil {
				return backend.ProductPayload{}, err
			}
			return backend.ProductPayload{
				Name:        v["name"],
				Description: v["description"],
				CategoryID:  catID,
				IsActive:    checked(v["isActive"]),
			}, nil
		},

		Rows: func(records []backend.Product) any {
			rows := make([]view.AdminProductRow, 0, len(records))
			for _, p := range records {
				rows = append(rows, view.AdminProductRow{
					ID:         p.ID,
					Name:       p.Name,
					Category:   "#" + strconv.Itoa(p.CategoryID),
					IsActive:   p.IsActive,
					Variants:   len(p.Variants),
					PriceRange: priceRange(p.Variants),
				})
			}
			return rows
		},

		// The product form needs the category options for its dropdown. A
		// failed lookup degrades to an empty list; the backend still rejects
		// an unknown category on submit.
		FormData: func(c *gin.Context) gin.H {
			page, err := client.Categories().List(c.Request.Context(), backend.ListParams{PageNumber: 1, PageSize: 50})
			if err != nil {
				log.Warn("category_options_failed", slog.Any("err", err))
				return gin.H{"Categories": []backend.Category{}}
			}
			return gin.H{"Categories": page.Records}
		},
	}, codec, log)
}

// ProductImagesHandler serves the variant image management on the product
// detail page: upload, delete and set-main. Every success navigates back to
// the detail page, which refetches the product; the backend owns the
// "exactly one main image per variant" invariant.
type ProductImagesHandler struct {
	api      backend.Products
	flash    *flash.Codec
	inflight *manager.Inflight
	log      *slog.Logger
}

func NewProductImagesHandler(client *backend.Client, codec *flash.Codec, log *slog.Logger) *ProductImagesHandler {
	return &ProductImagesHandler{
		api:      client.Products(),
		flash:    codec,
		inflight: manager.NewInflight(),
		log:      log,
	}
}

// Detail renders a product with its variants and images.
func (h *ProductImagesHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	p, err := h.api.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		if errors.Is(err, backend.ErrUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr(backend.UserMessage(err, ""), err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.AdminProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
	}
	for _, v := range p.Variants {
		av := view.AdminVariant{
			ID:    v.ID,
			Name:  v.Name,
			Price: view.Money(v.Price, "USD"),
			Stock: v.Stock,
		}
		for _, img := range v.Images {
			av.Images = append(av.Images, view.AdminVariantImage{ID: img.ID, URL: img.URL, IsMain: img.IsMain})
		}
		vm.Variants = append(vm.Variants, av)
	}

	render.HTML(c, http.StatusOK, "admin_products_detail", gin.H{
		"Title":   p.Name,
		"Product": vm,
	})
}

func (h *ProductImagesHandler) Upload(c *gin.Context) {
	productID := c.Param("id")
	variantID := c.Param("variantId")
	detailPath := "/admin/products/" + productID

	form, err := c.MultipartForm()
	if err != nil {
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError, "No files submitted.")
		return
	}

	var uploads []*backend.Upload
	for _, fh := range form.File["files"] {
		up, err := uploadFromHeader(fh)
		if err != nil {
			render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError, uploadErrorMessage(err, fh.Filename))
			return
		}
		uploads = append(uploads, up)
	}
	if len(uploads) == 0 {
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError, "No files submitted.")
		return
	}

	if err := h.api.UploadImages(c.Request.Context(), productID, variantID, uploads); err != nil {
		h.log.Error("image_upload_failed", slog.String("product", productID), slog.Any("err", err))
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError,
			backend.UserMessage(err, "Could not upload images."))
		return
	}
	render.RedirectWithFlash(c, h.flash, detailPath, view.FlashSuccess, "Images uploaded.")
}

func (h *ProductImagesHandler) Delete(c *gin.Context) {
	productID := c.Param("id")
	imageID := c.Param("imageId")
	detailPath := "/admin/products/" + productID

	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusFound, detailPath)
		return
	}

	key := "image:" + imageID
	if !h.inflight.Begin(key) {
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashWarning, "This image is already being processed.")
		return
	}
	defer h.inflight.End(key)

	if err := h.api.DeleteImage(c.Request.Context(), productID, imageID); err != nil {
		h.log.Error("image_delete_failed", slog.String("image", imageID), slog.Any("err", err))
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError,
			backend.UserMessage(err, "Could not delete image."))
		return
	}
	render.RedirectWithFlash(c, h.flash, detailPath, view.FlashSuccess, "Image deleted.")
}

func (h *ProductImagesHandler) SetMain(c *gin.Context) {
	productID := c.Param("id")
	imageID := c.Param("imageId")
	detailPath := "/admin/products/" + productID

	key := "image:" + imageID
	if !h.inflight.Begin(key) {
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashWarning, "This image is already being processed.")
		return
	}
	defer h.inflight.End(key)

	if err := h.api.SetMainImage(c.Request.Context(), productID, imageID); err != nil {
		h.log.Error("image_set_main_failed", slog.String("image", imageID), slog.Any("err", err))
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError,
			backend.UserMessage(err, "Could not set main image."))
		return
	}
	render.RedirectWithFlash(c, h.flash, detailPath, view.FlashSuccess, "Main image updated.")
}

func priceRange(variants []backend.Variant) string {
	if len(variants) == 0 {
		return "-"
	}
	lo, hi := variants[0].Price, variants[0].Price
	for _, v := range variants[1:] {
		if v.Price < lo {
			lo = v.Price
		}
		if v.Price > hi {
			hi = v.Price
		}
	}
	if lo == hi {
		return view.Money(lo, "USD")
	}
	return view.Money(lo, "USD") + " - " + view.Money(hi, "USD")
}

func uploadErrorMessage(err error, filename string) string {
	switch {
	case errors.Is(err, backend.ErrNotAnImage):
		return fmt.Sprintf("%s is not an image file.", filename)
	case errors.Is(err, backend.ErrImageTooBig):
		return fmt.Sprintf("%s exceeds the 5MB limit.", filename)
	default:
		return "Could not read the uploaded file."
	}
}
