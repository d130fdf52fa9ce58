package backend

import "context"

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type Categories struct{ c *Client }

func (c *Client) Categories() Categories { return Categories{c} }

func (a Categories) List(ctx context.Context, p ListParams) (Page[Category], error) {
	return list[Category](ctx, a.c, "/Category", "Name", p)
}

func (a Categories) Get(ctx context.Context, id string) (Category, error) {
	return getByID[Category](ctx, a.c, "/Category", id)
}

func (a Categories) Create(ctx context.Context, in CategoryPayload) (Category, error) {
	return create[Category](ctx, a.c, "/Category", in)
}

func (a Categories) Update(ctx context.Context, id string, in CategoryPayload) (Category, error) {
	return update[Category](ctx, a.c, "/Category", id, in)
}

func (a Categories) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/Category", id)
}
