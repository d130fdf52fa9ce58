package backend

import "context"

type FlavorNote struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FlavorNotePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FlavorNotes struct{ c *Client }

func (c *Client) FlavorNotes() FlavorNotes { return FlavorNotes{c} }

func (a FlavorNotes) List(ctx context.Context, p ListParams) (Page[FlavorNote], error) {
	return list[FlavorNote](ctx, a.c, "/FlavorNote", "Name", p)
}

func (a FlavorNotes) Get(ctx context.Context, id string) (FlavorNote, error) {
	return getByID[FlavorNote](ctx, a.c, "/FlavorNote", id)
}

func (a FlavorNotes) Create(ctx context.Context, in FlavorNotePayload) (FlavorNote, error) {
	return create[FlavorNote](ctx, a.c, "/FlavorNote", in)
}

func (a FlavorNotes) Update(ctx context.Context, id string, in FlavorNotePayload) (FlavorNote, error) {
	return update[FlavorNote](ctx, a.c, "/FlavorNote", id, in)
}

func (a FlavorNotes) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/FlavorNote", id)
}
