package backend

import "context"

// NewsPost is a storefront blog entry. The storefront only reads these;
// authoring happens elsewhere.
type NewsPost struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl"`
	PublishedDate string `json:"publishedDate"`
}

type News struct{ c *Client }

func (c *Client) News() News { return News{c} }

func (a News) List(ctx context.Context, p ListParams) (Page[NewsPost], error) {
	return list[NewsPost](ctx, a.c, "/News", "Title", p)
}

func (a News) Get(ctx context.Context, id string) (NewsPost, error) {
	return getByID[NewsPost](ctx, a.c, "/News", id)
}
