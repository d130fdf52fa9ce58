// Package paging holds the pagination value type shared by every admin list
// page: 1-based page numbers, a fixed set of page sizes and the elision
// window used by the pager control.
package paging

import (
	"strconv"
	"strings"
)

// PageSizes are the only selectable sizes. Changing the size always resets
// the page number to 1.
var PageSizes = []int{5, 10, 20, 50}

const DefaultPageSize = 10

// Ellipsis marks a collapsed run of page numbers in Window output.
const Ellipsis = -1

type Paging struct {
	PageNumber   int
	PageSize     int
	TotalPages   int
	TotalRecords int
}

func Default() Paging {
	return Paging{PageNumber: 1, PageSize: DefaultPageSize}
}

// FromQuery parses page/pageSize query values, falling back to defaults on
// anything unparseable or out of range.
func FromQuery(page, size string) Paging {
	p := Default()
	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n >= 1 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(size)); err == nil && validSize(n) {
		p.PageSize = n
	}
	return p
}

func validSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// WithPage returns a copy on the given page, clamped to [1, TotalPages]
// when TotalPages is known.
func (p Paging) WithPage(n int) Paging {
	if n < 1 {
		n = 1
	}
	if p.TotalPages > 0 && n > p.TotalPages {
		n = p.TotalPages
	}
	p.PageNumber = n
	return p
}

// WithPageSize returns a copy with the new size and the page reset to 1.
// Unknown sizes keep the current one.
func (p Paging) WithPageSize(n int) Paging {
	if validSize(n) {
		p.PageSize = n
	}
	p.PageNumber = 1
	return p
}

func (p Paging) HasPrev() bool { return p.PageNumber > 1 }

func (p Paging) HasNext() bool { return p.TotalPages > 0 && p.PageNumber < p.TotalPages }

// Window returns the page numbers to render: always the first page, the last
// page and current±1, with collapsed runs marked by Ellipsis. A run of length
// one is rendered as the page itself rather than an ellipsis.
func (p Paging) Window() []int {
	total := p.TotalPages
	if total <= 0 {
		return nil
	}
	cur := p.PageNumber
	if cur < 1 {
		cur = 1
	}
	if cur > total {
		cur = total
	}

	keep := func(n int) bool {
		return n == 1 || n == total || (n >= cur-1 && n <= cur+1)
	}

	var out []int
	for n := 1; n <= total; n++ {
		if keep(n) {
			out = append(out, n)
			continue
		}
		// collapse the run [n, next kept page)
		start := n
		for n+1 <= total && !keep(n+1) {
			n++
		}
		if start == n {
			out = append(out, start)
		} else {
			out = append(out, Ellipsis)
		}
	}
	return out
}

// PagesFromTotal derives the page count from a record total when the backend
// omits totalPages.
func PagesFromTotal(totalRecords, pageSize int) int {
	if pageSize <= 0 || totalRecords <= 0 {
		return 1
	}
	n := totalRecords / pageSize
	if totalRecords%pageSize != 0 {
		n++
	}
	return n
}
