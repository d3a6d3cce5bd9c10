package pagination

import (
	"net/http"
	"strconv"
)

// Defaults for catalog listing. The storefront UI fetches large working sets
// and filters client-side, so the default page size is generous.
const (
	DefaultPage    = 1
	DefaultPerPage = 100
	MaxPerPage     = 500
)

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// DefaultParams returns the default pagination parameters.
func DefaultParams() Params {
	return Params{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// FromRequest extracts pagination parameters from an HTTP request. Invalid or
// out-of-range values fall back to the defaults. Both "limit" and "per_page"
// are accepted for the page size.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	perPage := r.URL.Query().Get("per_page")
	if perPage == "" {
		perPage = r.URL.Query().Get("limit")
	}
	if perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= MaxPerPage {
			p.PerPage = v
		}
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}
