// Package catalog implements the pure query engine over product result sets:
// flag and category filters, free-text search, price bounds, and sorting.
// Functions here never mutate their inputs and hold no state, so both store
// backends and the HTTP layer can share them.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
)

// Sort names an ordering for product listings.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
)

// ParseSort maps a query-string value to a Sort. An empty value selects the
// default featured ordering; unknown values are rejected.
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "":
		return SortFeatured, true
	case SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc:
		return Sort(s), true
	default:
		return "", false
	}
}

// Query describes one filtered, sorted view over the product set. All
// populated filters compose with AND semantics.
type Query struct {
	CategoryIDs  []int64
	FeaturedOnly bool
	NewOnly      bool
	SaleOnly     bool
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         Sort
}

// Apply filters and sorts products per the query, returning a fresh slice.
// Filters run in a fixed order: category, featured, new, sale, search, then
// price bounds. The result for an empty query is a sorted copy of the input.
func Apply(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.matches(&p) {
			out = append(out, p)
		}
	}
	sortProducts(out, q.Sort)
	return out
}

func (q *Query) matches(p *domain.Product) bool {
	if len(q.CategoryIDs) > 0 && !containsID(q.CategoryIDs, p.CategoryID) {
		return false
	}
	if q.FeaturedOnly && !p.Featured {
		return false
	}
	if q.NewOnly && !p.IsNew {
		return false
	}
	if q.SaleOnly && !p.IsSale {
		return false
	}
	if !MatchesSearch(p, q.Search) {
		return false
	}
	if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
		return false
	}
	if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
		return false
	}
	return true
}

// MatchesSearch reports whether the product matches a free-text query:
// case-insensitive substring on name or description. An empty query matches
// everything.
func MatchesSearch(p *domain.Product, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// sortProducts orders products in place. All orderings are stable, so ties
// keep the store's insertion order.
func sortProducts(products []domain.Product, s Sort) {
	switch s {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	default: // SortFeatured
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
