package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brewhaus.com/app/internal/admin/manager"
	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/http/flash"
	"brewhaus.com/app/internal/http/middleware"
	"brewhaus.com/app/internal/http/render"
	"brewhaus.com/app/internal/http/validation"
	"brewhaus.com/app/internal/paging"
	"brewhaus.com/app/internal/shared/apperr"
	"brewhaus.com/app/pkg/view"
)

// OrdersHandler: orders are read-mostly: list, detail and a status change.
// No create or delete, so they sit outside the generic CRUD manager.
type OrdersHandler struct {
	api      backend.Orders
	flash    *flash.Codec
	inflight *manager.Inflight
	log      *slog.Logger
}

func NewOrdersHandler(client *backend.Client, codec *flash.Codec, log *slog.Logger) *OrdersHandler {
	return &OrdersHandler{
		api:      client.Orders(),
		flash:    codec,
		inflight: manager.NewInflight(),
		log:      log,
	}
}

func (h *OrdersHandler) List(c *gin.Context) {
	pg := paging.FromQuery(c.Query("page"), c.Query("pageSize"))

	data := gin.H{"Title": "Orders", "Statuses": backend.OrderStatuses}

	page, err := h.api.List(c.Request.Context(), backend.ListParams{
		PageNumber: pg.PageNumber,
		PageSize:   pg.PageSize,
	})
	if err != nil {
		h.log.Error("orders_list_failed", slog.Any("err", err))
		data["Rows"] = []view.AdminOrderListItem{}
		data["Pager"] = view.BuildPager(pg, "/admin/orders", "", nil)
		data["Error"] = backend.UserMessage(err, "Could not load orders.")
		render.HTML(c, http.StatusOK, "admin_orders_list", data)
		return
	}

	rows := make([]view.AdminOrderListItem, 0, len(page.Records))
	for _, o := range page.Records {
		rows = append(rows, view.AdminOrderListItem{
			ID:        o.ID,
			Customer:  o.CustomerName,
			Email:     o.Email,
			Status:    view.StatusDisplay(o.Status),
			Total:     view.Money(o.TotalAmount, "USD"),
			CreatedAt: view.FormatDate(o.CreatedDate),
			Updating:  h.inflight.Active(orderKey(strconv.Itoa(o.ID))),
		})
	}

	pg.TotalPages = page.TotalPages
	pg.TotalRecords = page.TotalRecords
	if pg.TotalPages == 0 {
		pg.TotalPages = paging.PagesFromTotal(page.TotalRecords, pg.PageSize)
	}

	data["Rows"] = rows
	data["Pager"] = view.BuildPager(pg, "/admin/orders", "", nil)
	render.HTML(c, http.StatusOK, "admin_orders_list", data)
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	o, err := h.api.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		if errors.Is(err, backend.ErrUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr(backend.UserMessage(err, ""), err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.AdminOrderDetail{
		ID:        o.ID,
		Customer:  o.CustomerName,
		Email:     o.Email,
		Status:    view.StatusDisplay(o.Status),
		Total:     view.Money(o.TotalAmount, "USD"),
		CreatedAt: view.FormatDate(o.CreatedDate),
		Statuses:  backend.OrderStatuses,
	}
	for _, it := range o.Items {
		vm.Items = append(vm.Items, view.AdminOrderItem{
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Qty:         it.Quantity,
			Unit:        view.Money(it.UnitPrice, "USD"),
			Line:        view.Money(it.LineTotal, "USD"),
		})
	}

	render.HTML(c, http.StatusOK, "admin_orders_detail", gin.H{
		"Title": "Order #" + id,
		"Order": vm,
	})
}

type statusForm struct {
	Status string `form:"status" binding:"required"`
}

// UpdateStatus issues the status change and, for fetch callers, returns the
// patched status so the row is updated in place without reloading the list.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	detailPath := "/admin/orders/" + id

	var f statusForm
	if err := c.ShouldBind(&f); err != nil {
		fields := validation.FromBindError(err, &f)
		middleware.Fail(c, apperr.InvalidErr("Select a status.", fields))
		return
	}
	if !backend.ValidStatus(f.Status) {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", map[string]string{"status": "Unknown order status."}))
		return
	}

	key := orderKey(id)
	if !h.inflight.Begin(key) {
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusConflict, gin.H{"error": "A status change for this order is already in progress."})
			return
		}
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashWarning,
			"A status change for this order is already in progress.")
		return
	}
	defer h.inflight.End(key)

	if err := h.api.UpdateStatus(c.Request.Context(), id, f.Status); err != nil {
		h.log.Error("order_status_failed", slog.String("order", id), slog.Any("err", err))
		msg := backend.UserMessage(err, "Could not update order status.")
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}
		render.RedirectWithFlash(c, h.flash, detailPath, view.FlashError, msg)
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"id": id, "status": view.StatusDisplay(f.Status)})
		return
	}
	render.RedirectWithFlash(c, h.flash, detailPath, view.FlashSuccess, "Order status updated.")
}

func orderKey(id string) string { return "Order:" + id }
