package view

import (
	"fmt"
	"net/url"
	"strconv"

	"brewhaus.com/app/internal/paging"
)

// PageLink is one element of the pager control. Ellipsis entries render as
// "…" and are not clickable.
type PageLink struct {
	Label    string
	URL      string
	Active   bool
	Ellipsis bool
}

// Pager is the fully resolved pagination control for a list page: numbered
// links with elision, prev/next and the page-size selector.
type Pager struct {
	Paging    paging.Paging
	Links     []PageLink
	PrevURL   string // empty when on the first page
	NextURL   string // empty when on the last page
	SizeLinks []PageLink
	Summary   string // e.g. "42 records"
}

// BuildPager resolves page numbers into URLs on basePath, carrying the search
// term and any extra filter values so they survive page navigation. Changing
// the page size resets to page 1 via Paging.WithPageSize.
func BuildPager(p paging.Paging, basePath, search string, filter url.Values) Pager {
	out := Pager{Paging: p}

	for _, n := range p.Window() {
		if n == paging.Ellipsis {
			out.Links = append(out.Links, PageLink{Label: "…", Ellipsis: true})
			continue
		}
		out.Links = append(out.Links, PageLink{
			Label:  strconv.Itoa(n),
			URL:    pageURL(basePath, search, filter, p.WithPage(n)),
			Active: n == p.PageNumber,
		})
	}

	if p.HasPrev() {
		out.PrevURL = pageURL(basePath, search, filter, p.WithPage(p.PageNumber-1))
	}
	if p.HasNext() {
		out.NextURL = pageURL(basePath, search, filter, p.WithPage(p.PageNumber+1))
	}

	for _, size := range paging.PageSizes {
		out.SizeLinks = append(out.SizeLinks, PageLink{
			Label:  strconv.Itoa(size),
			URL:    pageURL(basePath, search, filter, p.WithPageSize(size)),
			Active: size == p.PageSize,
		})
	}

	out.Summary = fmt.Sprintf("%d records", p.TotalRecords)
	return out
}

func pageURL(basePath, search string, filter url.Values, p paging.Paging) string {
	q := url.Values{}
	for k, vs := range filter {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	if search != "" {
		q.Set("q", search)
	}
	return basePath + "?" + q.Encode()
}
