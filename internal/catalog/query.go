// Package catalog implements the in-memory product query pipeline: filtering
// by category and brand, free-text search, stable sorting, and pagination.
// The same semantics back both the API listing (where the SQL repository does
// the equivalent work) and the fallback path that serves the built-in dataset
// when the database is unreachable.
package catalog

import (
	"sort"
	"strings"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
)

// Sort keys accepted by Apply. Anything else falls through to SortDefault,
// which preserves the caller-supplied order; malformed input degrades to a
// no-op rather than an error.
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// AllFilter is the category/brand filter value meaning "no filtering".
const AllFilter = "All"

// Pagination defaults for the listing API.
const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// Query holds the filter, search, and sort parameters for one invocation.
type Query struct {
	// Category filters by exact match unless empty or "All".
	Category string
	// Brand filters case-insensitively unless empty or "All". Products with
	// an empty brand never match a specific brand filter.
	Brand string
	// Search is matched as a lowercased substring of name, description, or
	// category. Leading/trailing whitespace is ignored; empty disables it.
	Search string
	// Sort is one of the Sort* keys.
	Sort string
	// BrandInSearch widens free-text matching to the brand field. The
	// browsing UI searches name/description/category only; the API variant
	// also searches brand.
	BrandInSearch bool
}

// Apply filters and sorts products per the query. The input slice is never
// mutated, the result order is deterministic, and sorting is stable: products
// with equal keys keep their relative input order.
func Apply(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(&p, q.Category) {
			continue
		}
		if !matchesBrand(&p, q.Brand) {
			continue
		}
		if search != "" && !matchesSearch(&p, search, q.BrandInSearch) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)
	return filtered
}

// Paginate slices products to the given 1-indexed page and returns the slice
// together with the total count before slicing, so callers can compute page
// counts.
func Paginate(products []domain.Product, page, limit int) ([]domain.Product, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	total := len(products)
	start := (page - 1) * limit
	if start >= total {
		return []domain.Product{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return products[start:end], total
}

// Brands returns the distinct brands present in the given products, sorted
// alphabetically. Empty brands are skipped.
func Brands(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var brands []string
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

func matchesCategory(p *domain.Product, category string) bool {
	if category == "" || category == AllFilter {
		return true
	}
	return p.Category == category
}

func matchesBrand(p *domain.Product, brand string) bool {
	if brand == "" || brand == AllFilter {
		return true
	}
	return p.Brand != "" && strings.EqualFold(p.Brand, brand)
}

func matchesSearch(p *domain.Product, search string, brandToo bool) bool {
	if strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Category), search) {
		return true
	}
	return brandToo && strings.Contains(strings.ToLower(p.Brand), search)
}

func sortProducts(products []domain.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DateAdded.After(products[j].DateAdded)
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	}
}
