// Package http wires the Gin engine: middleware chain, embedded templates and
// assets, the storefront routes and the admin back-office.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/config"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/handlers"
	"brewhaus.com/app/internal/http/handlers/admin"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/static"
	"brewhaus.com/app/templates"
)

func NewRouter(cfg *config.Config, log *slog.Logger, client *backend.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(templates.Parse())

	codec := flash.NewCodec([]byte(cfg.Flash.Secret), cfg.Flash.CookieName, cfg.Flash.Secure)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.FlashMiddleware(codec),
		middleware.ErrorHandler(log),
	)

	r.StaticFS("/static", http.FS(static.Files))

	// Storefront.
	news := handlers.NewNewsHandler(client, log)
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/news") })
	r.GET("/news", news.List)
	r.GET("/news/:id", news.Show)
	r.GET("/news/:id/:slug", news.Show)

	// Back-office.
	ag := r.Group("/admin")

	dash := admin.NewDashboardHandler(client, log)
	ag.GET("", dash.Dashboard)
	ag.GET("/statistics/revenue", dash.Revenue)
	ag.GET("/statistics/customers", dash.Customers)

	admin.NewCategoriesManager(client, codec, log).Register(ag.Group("/categories"))
	admin.NewFlavorNotesManager(client, codec, log).Register(ag.Group("/flavor-notes"))
	admin.NewBrewingMethodsManager(client, codec, log).Register(ag.Group("/brewing-methods"))
	admin.NewBannersManager(client, codec, log).Register(ag.Group("/banners"))
	admin.NewPromotionsManager(client, codec, log).Register(ag.Group("/promotions"))
	admin.NewUsersManager(client, codec, log).Register(ag.Group("/users"))
	admin.NewProductsManager(client, codec, log).Register(ag.Group("/products"))

	images := admin.NewProductImagesHandler(client, codec, log)
	ag.GET("/products/:id", images.Detail)
	ag.POST("/products/:id/variants/:variantId/images", images.Upload)
	ag.POST("/products/:id/images/:imageId/delete", images.Delete)
	ag.POST("/products/:id/images/:imageId/main", images.SetMain)

	orders := admin.NewOrdersHandler(client, codec, log)
	ag.GET("/orders", orders.List)
	ag.GET("/orders/:id", orders.Detail)
	ag.POST("/orders/:id/status", orders.UpdateStatus)

	return r
}
