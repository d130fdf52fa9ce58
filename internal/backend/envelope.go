package backend

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
)

// Page is the one canonical paged result. The legacy front end probed half a
// dozen envelope variants at every call site; here only the documented shapes
// are accepted and anything else is ErrUnexpectedShape.
type Page[T any] struct {
	Records      []T
	PageNumber   int
	PageSize     int
	TotalPages   int
	TotalRecords int
}

// ListParams: PageNumber is 1-based; values below 1 are clamped.
type ListParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func (p ListParams) normalized() ListParams {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	return p
}

type pagedBody struct {
	Records      json.RawMessage `json:"records"`
	Items        json.RawMessage `json:"items"`
	TotalPages   int             `json:"totalPages"`
	TotalRecords int             `json:"totalRecords"`
	CurrentPage  int             `json:"currentPage"`
}

// decodePage accepts, in order: a bare JSON array, {"data": [...]},
// {"data": {records/items, totalPages, ...}}, or the same paged object at the
// top level. Everything else fails with ErrUnexpectedShape.
func decodePage[T any](raw []byte, req ListParams) (Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	page := Page[T]{PageNumber: req.PageNumber, PageSize: req.PageSize}

	if len(trimmed) == 0 {
		return page, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &page.Records); err != nil {
			return page, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		page.TotalRecords = len(page.Records)
		page.TotalPages = 1
		return page, nil
	}

	var outer struct {
		Data json.RawMessage `json:"data"`
		pagedBody
	}
	if err := json.Unmarshal(trimmed, &outer); err != nil {
		return page, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	body := outer.pagedBody
	if len(outer.Data) > 0 && !bytes.Equal(bytes.TrimSpace(outer.Data), []byte("null")) {
		data := bytes.TrimSpace(outer.Data)
		if data[0] == '[' {
			if err := json.Unmarshal(data, &page.Records); err != nil {
				return page, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
			}
			page.TotalRecords = len(page.Records)
			page.TotalPages = 1
			return page, nil
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return page, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
	}

	records := body.Records
	if len(records) == 0 {
		records = body.Items
	}
	if len(records) == 0 {
		return page, fmt.Errorf("%w: no records array", ErrUnexpectedShape)
	}
	if err := json.Unmarshal(records, &page.Records); err != nil {
		return page, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	page.TotalPages = body.TotalPages
	page.TotalRecords = body.TotalRecords
	if body.CurrentPage > 0 {
		page.PageNumber = body.CurrentPage
	}
	return page, nil
}

// decodeRecord accepts {"data": T}, {"isSuccess": ..., "data": T} or a bare T.
func decodeRecord[T any](raw []byte) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return out, nil
	}

	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &probe); err == nil && len(probe.Data) > 0 &&
			!bytes.Equal(bytes.TrimSpace(probe.Data), []byte("null")) {
			if err := json.Unmarshal(probe.Data, &out); err != nil {
				return out, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
			}
			return out, nil
		}
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return out, nil
}

// list is the shared paged-GET helper. searchParam names the backend's filter
// query parameter ("Name" on most resources); empty disables search.
func list[T any](ctx context.Context, c *Client, path, searchParam string, p ListParams) (Page[T], error) {
	p = p.normalized()
	q := url.Values{}
	q.Set("PageNumber", strconv.Itoa(p.PageNumber))
	q.Set("PageSize", strconv.Itoa(p.PageSize))
	if searchParam != "" && p.Search != "" {
		q.Set(searchParam, p.Search)
	}
	raw, err := c.getRaw(ctx, path, q)
	if err != nil {
		return Page[T]{PageNumber: p.PageNumber, PageSize: p.PageSize}, err
	}
	return decodePage[T](raw, p)
}

func getByID[T any](ctx context.Context, c *Client, path, id string) (T, error) {
	raw, err := c.getRaw(ctx, path+"/"+url.PathEscape(id), nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeRecord[T](raw)
}

func create[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, path, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeRecord[T](raw)
}

func update[T any](ctx context.Context, c *Client, path, id string, payload any) (T, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, path+"/"+url.PathEscape(id), payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeRecord[T](raw)
}

func remove(ctx context.Context, c *Client, path, id string) error {
	return c.deleteRaw(ctx, path+"/"+url.PathEscape(id))
}
