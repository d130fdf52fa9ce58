package backend

import "context"

type Promotion struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	IsActive        bool    `json:"isActive"`
}

type PromotionPayload struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	IsActive        bool    `json:"isActive"`
}

type Promotions struct{ c *Client }

func (c *Client) Promotions() Promotions { return Promotions{c} }

func (a Promotions) List(ctx context.Context, p ListParams) (Page[Promotion], error) {
	return list[Promotion](ctx, a.c, "/Promotion", "Name", p)
}

func (a Promotions) Get(ctx context.Context, id string) (Promotion, error) {
	return getByID[Promotion](ctx, a.c, "/Promotion", id)
}

func (a Promotions) Create(ctx context.Context, in PromotionPayload) (Promotion, error) {
	return create[Promotion](ctx, a.c, "/Promotion", in)
}

func (a Promotions) Update(ctx context.Context, id string, in PromotionPayload) (Promotion, error) {
	return update[Promotion](ctx, a.c, "/Promotion", id, in)
}

func (a Promotions) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/Promotion", id)
}
