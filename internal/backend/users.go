package backend

import "context"

// User maps the backend's AspNetUsers records. IDs are GUID strings, unlike
// the integer ids of the catalog entities.
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    bool   `json:"isActive"`
}

// UserPayload: Password is required on create and optional on edit; an empty
// password on update means "keep the current one" and is omitted from the
// JSON body.
type UserPayload struct {
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type Users struct{ c *Client }

func (c *Client) Users() Users { return Users{c} }

func (a Users) List(ctx context.Context, p ListParams) (Page[User], error) {
	return list[User](ctx, a.c, "/AspNetUsers", "Name", p)
}

func (a Users) Get(ctx context.Context, id string) (User, error) {
	return getByID[User](ctx, a.c, "/AspNetUsers", id)
}

func (a Users) Create(ctx context.Context, in UserPayload) (User, error) {
	return create[User](ctx, a.c, "/AspNetUsers", in)
}

func (a Users) Update(ctx context.Context, id string, in UserPayload) (User, error) {
	return update[User](ctx, a.c, "/AspNetUsers", id, in)
}

func (a Users) Delete(ctx context.Context, id string) error {
	return remove(ctx, a.c, "/AspNetUsers", id)
}
