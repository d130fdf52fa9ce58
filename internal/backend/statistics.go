package backend

import (
	"context"
	"net/url"
	"strings"
)

type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
	RevenueToday   float64 `json:"revenueToday"`
	OrdersToday    int     `json:"ordersToday"`
}

type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type CustomerStats struct {
	TotalCustomers    int     `json:"totalCustomers"`
	NewThisMonth      int     `json:"newThisMonth"`
	ReturningPercent  float64 `json:"returningPercent"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// RevenueQuery: dates in "2006-01-02" form; GroupBy is day/week/month;
// Status optionally narrows to one order status (upper-cased on the wire).
type RevenueQuery struct {
	FromDate string
	ToDate   string
	GroupBy  string
	Status   string
}

type Statistics struct{ c *Client }

func (c *Client) Statistics() Statistics { return Statistics{c} }

func (a Statistics) Dashboard(ctx context.Context) (DashboardStats, error) {
	raw, err := a.c.getRaw(ctx, "/Statistics/dashboard", nil)
	if err != nil {
		return DashboardStats{}, err
	}
	return decodeRecord[DashboardStats](raw)
}

func (a Statistics) Revenue(ctx context.Context, q RevenueQuery) ([]RevenuePoint, error) {
	vals := url.Values{}
	if q.FromDate != "" {
		vals.Set("FromDate", q.FromDate)
	}
	if q.ToDate != "" {
		vals.Set("ToDate", q.ToDate)
	}
	if q.GroupBy != "" {
		vals.Set("GroupBy", q.GroupBy)
	}
	if q.Status != "" {
		vals.Set("Status", strings.ToUpper(q.Status))
	}
	raw, err := a.c.getRaw(ctx, "/Statistics/revenue", vals)
	if err != nil {
		return nil, err
	}
	return decodeRecord[[]RevenuePoint](raw)
}

func (a Statistics) Customers(ctx context.Context) (CustomerStats, error) {
	raw, err := a.c.getRaw(ctx, "/Statistics/customers", nil)
	if err != nil {
		return CustomerStats{}, err
	}
	return decodeRecord[CustomerStats](raw)
}
