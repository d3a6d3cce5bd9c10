package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	p := FromRequest(r)

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_ExplicitValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?page=3&per_page=20", nil)

	p := FromRequest(r)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 40, p.Offset)
}

func TestFromRequest_LimitAlias(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?limit=50", nil)

	p := FromRequest(r)

	assert.Equal(t, 50, p.PerPage)
}

func TestFromRequest_InvalidValuesFallBack(t *testing.T) {
	tests := []string{
		"/products?page=0",
		"/products?page=-2",
		"/products?page=abc",
		"/products?per_page=0",
		"/products?per_page=9999",
		"/products?limit=oops",
	}

	for _, url := range tests {
		p := FromRequest(httptest.NewRequest("GET", url, nil))
		assert.Equal(t, DefaultPage, p.Page, "url: %s", url)
		assert.Equal(t, DefaultPerPage, p.PerPage, "url: %s", url)
	}
}
