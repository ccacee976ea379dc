package web

import (
	"net/url"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/filter"
)

// The active portfolio category lives in the "category" query parameter so
// filtered views can be bookmarked and shared. "all" is never written out;
// removing the key means the same thing. The free-text search box is form
// state only and stays out of the URL sync.
const (
	categoryParam = "category"
	searchParam   = "q"
)

// categoryFromQuery reads the active category from a query string. A missing
// key or a value that is not a known category selects all projects.
func categoryFromQuery(values url.Values) string {
	raw := values.Get(categoryParam)
	if raw == "" || raw == filter.All {
		return filter.All
	}
	if _, err := domain.ParseCategory(raw); err != nil {
		return filter.All
	}
	return raw
}

// portfolioURL builds the portfolio path for a category selection.
func portfolioURL(category string) string {
	if category == "" || category == filter.All {
		return "/portfolio"
	}
	return "/portfolio?" + url.Values{categoryParam: {category}}.Encode()
}
