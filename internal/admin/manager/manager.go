// Package manager implements the one CRUD workflow every admin resource
// shares: paged list with search, create/edit forms with validated submits,
// confirm-gated deletes and the optimistic active toggle. Each entity page is
// an instantiation of Manager with its own hooks instead of a hand-rolled
// copy of the state machine.
package manager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/forms"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/internal/http/render"
	"brewhaus.com/app/internal/http/validation"
	"brewhaus.com/app/internal/paging"
	"brewhaus.com/app/internal/shared/apperr"
	"brewhaus.com/app/pkg/view"
)

// Config wires one entity into the generic workflow. T is the backend record
// type, P its write payload.
type Config[T any, P any] struct {
	Name     string // singular display name, e.g. "Category"
	Plural   string // list page title, e.g. "Categories"
	BasePath string // e.g. "/admin/categories"

	ListTemplate string
	FormTemplate string

	List   func(ctx context.Context, p backend.ListParams) (backend.Page[T], error)
	Get    func(ctx context.Context, id string) (T, error)
	Create func(ctx context.Context, in P) (T, error)
	Update func(ctx context.Context, id string, in P) (T, error)
	Delete func(ctx context.Context, id string) error

	ID       func(T) string
	Form     func(edit bool) *forms.State
	SeedFrom func(T) map[string]string
	Payload  func(values map[string]string) (P, error)

	// Rows maps records to view models for the list template. Optional; the
	// raw records are passed through when nil.
	Rows func([]T) any

	// Toggle support (banners, promotions). Toggle builds the full-record
	// payload with isActive flipped; nil disables the route.
	Toggle   func(T) P
	IsActive func(T) bool

	// FormData supplies extra template data for the form page, e.g. the
	// category options on the product form. Optional.
	FormData func(c *gin.Context) gin.H

	// FormValues overrides the default PostForm extraction. Banners use it to
	// surface the uploaded filename as a validatable "file" value. Optional.
	FormValues func(c *gin.Context, fields []string) map[string]string

	// PayloadFromRequest builds the payload with access to the request, for
	// multipart resources that carry a file. When set, Payload is unused.
	PayloadFromRequest func(c *gin.Context, values map[string]string) (P, error)

	// ListFromRequest overrides List with access to the request, for lists
	// that narrow beyond paging and search (the category filter on products).
	// When set, List is unused by ListPage.
	ListFromRequest func(c *gin.Context, p backend.ListParams) (backend.Page[T], error)

	// Filter extracts the extra query values ListFromRequest acts on; they
	// are carried on every pager link and exposed to the list template as
	// .Filter. Optional.
	Filter func(c *gin.Context) url.Values
}

type Manager[T any, P any] struct {
	cfg      Config[T, P]
	flash    *flash.Codec
	inflight *Inflight
	log      *slog.Logger
}

func New[T any, P any](cfg Config[T, P], codec *flash.Codec, log *slog.Logger) *Manager[T, P] {
	return &Manager[T, P]{cfg: cfg, flash: codec, inflight: NewInflight(), log: log}
}

// Register mounts the CRUD routes on a router group rooted at BasePath.
func (m *Manager[T, P]) Register(rg *gin.RouterGroup) {
	rg.GET("", m.ListPage)
	rg.GET("/new", m.NewPage)
	rg.POST("", m.CreateAction)
	rg.GET("/:id/edit", m.EditPage)
	rg.POST("/:id", m.UpdateAction)
	rg.POST("/:id/delete", m.DeleteAction)
	rg.POST("/validate", m.ValidateField)
	if m.cfg.Toggle != nil {
		rg.POST("/:id/toggle", m.ToggleAction)
	}
}

// ListPage: a failed fetch still renders the page, with no rows and an error
// notice, leaving the user free to retry. Nothing is retried automatically.
func (m *Manager[T, P]) ListPage(c *gin.Context) {
	pg := paging.FromQuery(c.Query("page"), c.Query("pageSize"))
	q := c.Query("q")

	filter := url.Values{}
	if m.cfg.Filter != nil {
		filter = m.cfg.Filter(c)
	}

	data := gin.H{
		"Title":    m.cfg.Plural,
		"Name":     m.cfg.Name,
		"BasePath": m.cfg.BasePath,
		"Search":   q,
		"Filter":   filter,
	}

	params := backend.ListParams{
		PageNumber: pg.PageNumber,
		PageSize:   pg.PageSize,
		Search:     q,
	}
	var page backend.Page[T]
	var err error
	if m.cfg.ListFromRequest != nil {
		page, err = m.cfg.ListFromRequest(c, params)
	} else {
		page, err = m.cfg.List(c.Request.Context(), params)
	}
	if err != nil {
		m.log.Error("list_failed", slog.String("resource", m.cfg.Name), slog.Any("err", err))
		data["Rows"] = m.rows(nil)
		data["Pager"] = view.BuildPager(pg, m.cfg.BasePath, q, filter)
		data["Updating"] = map[string]bool{}
		data["Error"] = backend.UserMessage(err, "Could not load "+m.cfg.Plural+".")
		render.HTML(c, http.StatusOK, m.cfg.ListTemplate, data)
		return
	}

	pg.PageNumber = page.PageNumber
	pg.TotalRecords = page.TotalRecords
	pg.TotalPages = page.TotalPages
	if pg.TotalPages == 0 {
		pg.TotalPages = paging.PagesFromTotal(page.TotalRecords, pg.PageSize)
	}

	updating := map[string]bool{}
	for _, r := range page.Records {
		id := m.cfg.ID(r)
		if m.inflight.Active(m.key(id)) {
			updating[id] = true
		}
	}

	data["Rows"] = m.rows(page.Records)
	data["Pager"] = view.BuildPager(pg, m.cfg.BasePath, q, filter)
	data["Updating"] = updating
	render.HTML(c, http.StatusOK, m.cfg.ListTemplate, data)
}

func (m *Manager[T, P]) rows(records []T) any {
	if records == nil {
		records = []T{}
	}
	if m.cfg.Rows != nil {
		return m.cfg.Rows(records)
	}
	return records
}

func (m *Manager[T, P]) NewPage(c *gin.Context) {
	m.renderForm(c, http.StatusOK, m.cfg.Form(false), "create", "", "")
}

func (m *Manager[T, P]) EditPage(c *gin.Context) {
	id := c.Param("id")
	rec, err := m.cfg.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr(m.cfg.Name+" not found."))
			return
		}
		if errors.Is(err, backend.ErrUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr(backend.UserMessage(err, ""), err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	st := m.cfg.Form(true)
	st.Seed(m.cfg.SeedFrom(rec))
	m.renderForm(c, http.StatusOK, st, "edit", id, "")
}

// CreateAction validates locally first; an invalid form never reaches the
// network and simply re-renders with inline errors. On a backend rejection
// the form also stays open with the user's input intact.
func (m *Manager[T, P]) CreateAction(c *gin.Context) {
	m.submit(c, "create", "")
}

func (m *Manager[T, P]) UpdateAction(c *gin.Context) {
	m.submit(c, "edit", c.Param("id"))
}

func (m *Manager[T, P]) submit(c *gin.Context, mode, id string) {
	edit := mode == "edit"
	st := m.cfg.Form(edit)

	var vals map[string]string
	if m.cfg.FormValues != nil {
		vals = m.cfg.FormValues(c, st.Fields())
	} else {
		vals = make(map[string]string)
		for _, name := range st.Fields() {
			vals[name] = c.PostForm(name)
		}
	}
	st.Seed(vals)

	if !st.Submit() {
		m.renderForm(c, http.StatusUnprocessableEntity, st, mode, id, "")
		return
	}

	var payload P
	var err error
	if m.cfg.PayloadFromRequest != nil {
		payload, err = m.cfg.PayloadFromRequest(c, st.Values())
	} else {
		payload, err = m.cfg.Payload(st.Values())
	}
	if err != nil {
		m.renderForm(c, http.StatusUnprocessableEntity, st, mode, id, "The submitted data is invalid.")
		return
	}

	ctx := c.Request.Context()
	var verb string
	if edit {
		_, err = m.cfg.Update(ctx, id, payload)
		verb = "updated"
	} else {
		_, err = m.cfg.Create(ctx, payload)
		verb = "created"
	}
	if err != nil {
		m.log.Error("submit_failed",
			slog.String("resource", m.cfg.Name),
			slog.String("mode", mode),
			slog.Any("err", err),
		)
		m.renderForm(c, m.statusFor(err), st, mode, id,
			backend.UserMessage(err, "Could not save "+m.cfg.Name+"."))
		return
	}

	st.Reset()
	render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashSuccess, m.cfg.Name+" "+verb+".")
}

// DeleteAction requires confirm=1; anything else is a cancel and issues no
// backend call. Double submission for the same record is rejected by the
// in-flight set.
func (m *Manager[T, P]) DeleteAction(c *gin.Context) {
	id := c.Param("id")
	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusFound, m.cfg.BasePath)
		return
	}

	key := m.key(id)
	if !m.inflight.Begin(key) {
		render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashWarning,
			"An operation for this "+m.cfg.Name+" is already in progress.")
		return
	}
	defer m.inflight.End(key)

	if err := m.cfg.Delete(c.Request.Context(), id); err != nil {
		m.log.Error("delete_failed", slog.String("resource", m.cfg.Name), slog.String("id", id), slog.Any("err", err))
		render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashError,
			backend.UserMessage(err, "Could not delete "+m.cfg.Name+"."))
		return
	}

	render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashSuccess, m.cfg.Name+" deleted.")
}

// ToggleAction is the one place a success does NOT refetch: the response
// carries just the flipped flag and the row is patched in place. Create,
// update and delete can change ordering or pagination, so they navigate back
// to a fresh list instead.
func (m *Manager[T, P]) ToggleAction(c *gin.Context) {
	id := c.Param("id")
	key := m.key(id)
	if !m.inflight.Begin(key) {
		m.toggleError(c, http.StatusConflict, "An operation for this "+m.cfg.Name+" is already in progress.")
		return
	}
	defer m.inflight.End(key)

	ctx := c.Request.Context()
	rec, err := m.cfg.Get(ctx, id)
	if err != nil {
		m.toggleError(c, m.statusFor(err), backend.UserMessage(err, "Could not load "+m.cfg.Name+"."))
		return
	}

	if _, err := m.cfg.Update(ctx, id, m.cfg.Toggle(rec)); err != nil {
		m.log.Error("toggle_failed", slog.String("resource", m.cfg.Name), slog.String("id", id), slog.Any("err", err))
		m.toggleError(c, m.statusFor(err), backend.UserMessage(err, "Could not update "+m.cfg.Name+"."))
		return
	}

	newActive := !m.cfg.IsActive(rec)
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"id": id, "isActive": newActive})
		return
	}
	render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashSuccess, m.cfg.Name+" updated.")
}

// validateRequest is the blur-validation probe sent by the form page: it
// computes the error for exactly one touched field.
type validateRequest struct {
	Field  string            `json:"field" binding:"required"`
	Mode   string            `json:"mode" binding:"omitempty,oneof=create edit"`
	Values map[string]string `json:"values"`
}

func (m *Manager[T, P]) ValidateField(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"fields": validation.FromBindError(err, &req)})
		return
	}

	st := m.cfg.Form(req.Mode == "edit")
	st.Seed(req.Values)
	st.Touch(req.Field)
	c.JSON(http.StatusOK, gin.H{"field": req.Field, "error": st.VisibleError(req.Field)})
}

func (m *Manager[T, P]) renderForm(c *gin.Context, status int, st *forms.State, mode, id, errMsg string) {
	action := m.cfg.BasePath
	if mode == "edit" {
		action = m.cfg.BasePath + "/" + id
	}
	data := gin.H{
		"Title":    m.cfg.Name,
		"Name":     m.cfg.Name,
		"BasePath": m.cfg.BasePath,
		"Mode":     mode,
		"ID":       id,
		"Action":   action,
		"Form":     st,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	if m.cfg.FormData != nil {
		for k, v := range m.cfg.FormData(c) {
			data[k] = v
		}
	}
	render.HTML(c, status, m.cfg.FormTemplate, data)
}

func (m *Manager[T, P]) toggleError(c *gin.Context, status int, msg string) {
	if middleware.WantsJSON(c) {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	render.RedirectWithFlash(c, m.flash, m.cfg.BasePath, view.FlashError, msg)
}

func (m *Manager[T, P]) statusFor(err error) int {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, backend.ErrUnavailable):
		return http.StatusBadGateway
	default:
		var ae *backend.APIError
		if errors.As(err, &ae) && ae.Status >= 400 && ae.Status < 500 {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	}
}

func (m *Manager[T, P]) key(id string) string {
	return m.cfg.Name + ":" + id
}
