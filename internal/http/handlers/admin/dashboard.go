package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/http/render"
	"brewhaus.com/app/pkg/view"
)

// DashboardHandler renders the analytics pages: aggregate stats fetched once
// per page load, no write operations.
type DashboardHandler struct {
	api backend.Statistics
	log *slog.Logger
}

func NewDashboardHandler(client *backend.Client, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{api: client.Statistics(), log: log}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	data := gin.H{"Title": "Dashboard"}

	stats, err := h.api.Dashboard(c.Request.Context())
	if err != nil {
		h.log.Error("dashboard_failed", slog.Any("err", err))
		data["Error"] = backend.UserMessage(err, "Could not load dashboard statistics.")
		render.HTML(c, http.StatusOK, "admin_dashboard", data)
		return
	}

	data["Stats"] = view.DashboardPage{
		TotalRevenue:   view.Money(stats.TotalRevenue, "USD"),
		RevenueToday:   view.Money(stats.RevenueToday, "USD"),
		TotalOrders:    stats.TotalOrders,
		OrdersToday:    stats.OrdersToday,
		TotalCustomers: stats.TotalCustomers,
		TotalProducts:  stats.TotalProducts,
	}
	render.HTML(c, http.StatusOK, "admin_dashboard", data)
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	q := backend.RevenueQuery{
		FromDate: c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format("2006-01-02")),
		ToDate:   c.DefaultQuery("to", time.Now().Format("2006-01-02")),
		GroupBy:  c.DefaultQuery("groupBy", "day"),
		Status:   c.Query("status"),
	}

	page := view.RevenuePage{
		FromDate: q.FromDate,
		ToDate:   q.ToDate,
		GroupBy:  q.GroupBy,
		Status:   q.Status,
		Statuses: backend.OrderStatuses,
	}
	data := gin.H{"Title": "Revenue", "Page": page}

	points, err := h.api.Revenue(c.Request.Context(), q)
	if err != nil {
		h.log.Error("revenue_failed", slog.Any("err", err))
		data["Error"] = backend.UserMessage(err, "Could not load revenue statistics.")
		render.HTML(c, http.StatusOK, "admin_revenue", data)
		return
	}

	for _, p := range points {
		page.Rows = append(page.Rows, view.RevenueRow{
			Period:  p.Period,
			Revenue: view.Money(p.Revenue, "USD"),
			Orders:  p.Orders,
		})
	}
	data["Page"] = page
	render.HTML(c, http.StatusOK, "admin_revenue", data)
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	data := gin.H{"Title": "Customers"}

	stats, err := h.api.Customers(c.Request.Context())
	if err != nil {
		h.log.Error("customers_failed", slog.Any("err", err))
		data["Error"] = backend.UserMessage(err, "Could not load customer statistics.")
		render.HTML(c, http.StatusOK, "admin_customers", data)
		return
	}

	data["Page"] = view.CustomersPage{
		TotalCustomers:    stats.TotalCustomers,
		NewThisMonth:      stats.NewThisMonth,
		ReturningPercent:  fmt.Sprintf("%.1f%%", stats.ReturningPercent),
		AverageOrderValue: view.Money(stats.AverageOrderValue, "USD"),
	}
	render.HTML(c, http.StatusOK, "admin_customers", data)
}
