package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type OrderItem struct {
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	CreatedDate  string      `json:"createdDate"`
	Items        []OrderItem `json:"items"`
}

// OrderStatuses lists the transitions the dashboard offers, in display
// (lower-case) form. The wire form is upper-case.
var OrderStatuses = []string{"pending", "confirmed", "shipped", "delivered", "cancelled"}

type Orders struct{ c *Client }

func (c *Client) Orders() Orders { return Orders{c} }

// List: the order endpoint uses its own paging parameter names
// (page/pageSize rather than PageNumber/PageSize) and has no search filter.
func (a Orders) List(ctx context.Context, p ListParams) (Page[Order], error) {
	p = p.normalized()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	raw, err := a.c.getRaw(ctx, "/Order/all", q)
	if err != nil {
		return Page[Order]{PageNumber: p.PageNumber, PageSize: p.PageSize}, err
	}
	return decodePage[Order](raw, p)
}

func (a Orders) Get(ctx context.Context, id string) (Order, error) {
	return getByID[Order](ctx, a.c, "/Order", id)
}

// UpdateStatus issues PUT /Order/{id}/status?status=DELIVERED. The status is
// upper-cased on the wire; display code lower-cases it again. This is the
// only contract for the endpoint, with no body fallbacks.
func (a Orders) UpdateStatus(ctx context.Context, id, status string) error {
	q := url.Values{}
	q.Set("status", strings.ToUpper(status))
	_, err := a.c.do(ctx, http.MethodPut, "/Order/"+url.PathEscape(id)+"/status", q, nil, "")
	return err
}

// ValidStatus reports whether the dashboard may offer this status value.
func ValidStatus(s string) bool {
	s = strings.ToLower(s)
	for _, k := range OrderStatuses {
		if k == s {
			return true
		}
	}
	return false
}
