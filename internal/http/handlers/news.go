package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/internal/http/render"
	"brewhaus.com/app/internal/paging"
	"brewhaus.com/app/internal/shared/apperr"
	"brewhaus.com/app/internal/shared/slug"
	"brewhaus.com/app/pkg/view"
)

// NewsHandler serves the storefront news/blog listing.
type NewsHandler struct {
	api backend.News
	log *slog.Logger
}

func NewNewsHandler(client *backend.Client, log *slog.Logger) *NewsHandler {
	return &NewsHandler{api: client.News(), log: log}
}

func (h *NewsHandler) List(c *gin.Context) {
	pg := paging.FromQuery(c.Query("page"), c.Query("pageSize"))

	data := gin.H{"Title": "News"}

	page, err := h.api.List(c.Request.Context(), backend.ListParams{
		PageNumber: pg.PageNumber,
		PageSize:   pg.PageSize,
	})
	if err != nil {
		h.log.Error("news_list_failed", slog.Any("err", err))
		data["Posts"] = []view.NewsCard{}
		data["Error"] = backend.UserMessage(err, "Could not load news.")
		render.HTML(c, http.StatusOK, "news_list", data)
		return
	}

	cards := make([]view.NewsCard, 0, len(page.Records))
	for _, p := range page.Records {
		cards = append(cards, view.NewsCard{
			ID:        p.ID,
			Slug:      slug.FromName(p.Title),
			Title:     p.Title,
			Summary:   p.Summary,
			ImageURL:  p.ImageURL,
			Published: view.FormatDate(p.PublishedDate),
		})
	}

	pg.TotalPages = page.TotalPages
	pg.TotalRecords = page.TotalRecords
	if pg.TotalPages == 0 {
		pg.TotalPages = paging.PagesFromTotal(page.TotalRecords, pg.PageSize)
	}

	data["Posts"] = cards
	data["Pager"] = view.BuildPager(pg, "/news", "", nil)
	render.HTML(c, http.StatusOK, "news_list", data)
}

func (h *NewsHandler) Show(c *gin.Context) {
	id := c.Param("id")

	p, err := h.api.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Post not found."))
			return
		}
		if errors.Is(err, backend.ErrUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr(backend.UserMessage(err, ""), err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.HTML(c, http.StatusOK, "news_detail", gin.H{
		"Title": p.Title,
		"Post": view.NewsDetail{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			ImageURL:  p.ImageURL,
			Published: view.FormatDate(p.PublishedDate),
		},
	})
}
