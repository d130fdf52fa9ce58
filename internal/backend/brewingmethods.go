package backend

import "context"

type BrewingMethod struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BrewingMethodPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BrewingMethods struct{ c *Client }

func (c *Client) BrewingMethods() BrewingMethods { return BrewingMethods{c} }

func (a BrewingMethods) List(ctx context.Context, p ListParams) (Page[BrewingMethod], error) {
	return list[BrewingMethod](ctx, a.c, "/BrewingMethods", "Name", p)
}

func (a BrewingMethods) Get(ctx context.Context, id string) (BrewingMethod, error) {
	return getByID[BrewingMethod](ctx, a.c, "/BrewingMethods", id)
}

func (a BrewingMethods) Create(ctx context.Context, in BrewingMethodPayload) (BrewingMethod, error) {
	return create[BrewingMethod](ctx, a.c, "/BrewingMethods", in)
}

func (a BrewingMethods) Update(ctx context.Context, id string, in BrewingMethodPayload) (BrewingMethod, error) {
	return update[BrewingMethod](ctx, a.c, "/BrewingMethods", id, in)
}

func (a BrewingMethods) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/BrewingMethods", id)
}
