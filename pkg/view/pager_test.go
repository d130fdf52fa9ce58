package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhaus.com/app/internal/paging"
)

func TestBuildPagerLinks(t *testing.T) {
	p := paging.Paging{PageNumber: 5, PageSize: 10, TotalPages: 10, TotalRecords: 95}
	pager := BuildPager(p, "/admin/categories", "", nil)

	var labels []string
	for _, l := range pager.Links {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"1", "…", "4", "5", "6", "…", "10"}, labels)

	for _, l := range pager.Links {
		if l.Label == "5" {
			assert.True(t, l.Active)
		}
		if l.Ellipsis {
			assert.Empty(t, l.URL)
		}
	}

	assert.Equal(t, "/admin/categories?page=4&pageSize=10", pager.PrevURL)
	assert.Equal(t, "/admin/categories?page=6&pageSize=10", pager.NextURL)
	assert.Equal(t, "95 records", pager.Summary)
}

func TestBuildPagerCarriesSearch(t *testing.T) {
	p := paging.Paging{PageNumber: 1, PageSize: 10, TotalPages: 3}
	pager := BuildPager(p, "/admin/products", "ethiopia", nil)

	require.NotEmpty(t, pager.Links)
	assert.Contains(t, pager.Links[0].URL, "q=ethiopia")
	assert.Contains(t, pager.NextURL, "q=ethiopia")
	assert.Empty(t, pager.PrevURL)
}

func TestBuildPagerCarriesFilter(t *testing.T) {
	p := paging.Paging{PageNumber: 1, PageSize: 10, TotalPages: 3}
	pager := BuildPager(p, "/admin/products", "", url.Values{"category": {"3"}})

	require.NotEmpty(t, pager.Links)
	assert.Contains(t, pager.Links[0].URL, "category=3")
	assert.Contains(t, pager.NextURL, "category=3")
	for _, l := range pager.SizeLinks {
		assert.Contains(t, l.URL, "category=3", "size link %s must keep the filter", l.Label)
	}
}

func TestBuildPagerSizeLinksResetPage(t *testing.T) {
	p := paging.Paging{PageNumber: 4, PageSize: 10, TotalPages: 8}
	pager := BuildPager(p, "/admin/orders", "", nil)

	require.Len(t, pager.SizeLinks, len(paging.PageSizes))
	for _, l := range pager.SizeLinks {
		assert.Contains(t, l.URL, "page=1", "size change must land on page 1 (link %s)", l.Label)
	}
	// the active size is marked
	var active []string
	for _, l := range pager.SizeLinks {
		if l.Active {
			active = append(active, l.Label)
		}
	}
	assert.Equal(t, []string{"10"}, active)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$12.50", Money(12.5, "USD"))
	assert.Equal(t, "€0.99", Money(0.99, "EUR"))
	assert.Equal(t, "SEK 5.00", Money(5, "SEK"))
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "delivered", StatusDisplay("DELIVERED"))
	assert.Equal(t, "pending", StatusDisplay("  Pending "))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-08-01 14:30", FormatDate("2026-08-01T14:30:00Z"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}
