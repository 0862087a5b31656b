// internal/domain/browse/browse.go
package browse

import (
	"sort"
	"strings"

	"github.com/your-org/primecart/internal/catalog"
)

// Sort keys accepted by Query.Sort. Default preserves the original catalog
// order.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortName      = "name"
)

// Query represents the user-selected filters over the catalog. It is
// transient state: never persisted.
type Query struct {
	Search   string
	Category string
	Sort     string
	Page     int
}

// Result is the paginated visible subset produced by the pipeline. Page is
// the page actually served after clamping, so callers can sync their state.
type Result struct {
	Items      []catalog.Product `json:"items"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// Pipeline turns the full product list and a query into the visible page.
// It re-runs in full on every input change; the catalog is small enough
// that incremental recomputation would buy nothing.
type Pipeline struct {
	pageSize int
}

// NewPipeline creates a pipeline with the given page size
func NewPipeline(pageSize int) *Pipeline {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pipeline{pageSize: pageSize}
}

// Apply runs the fixed stage order: category filter, text search, stable
// sort, pagination. An empty result set is a valid first-class output.
func (p *Pipeline) Apply(products []catalog.Product, q Query) Result {
	filtered := filterByCategory(products, q.Category)
	filtered = filterBySearch(filtered, q.Search)
	sortProducts(filtered, q.Sort)
	return p.paginate(filtered, q.Page)
}

// FilterSorted returns the full filtered and sorted set without pagination
func (p *Pipeline) FilterSorted(products []catalog.Product, q Query) []catalog.Product {
	filtered := filterByCategory(products, q.Category)
	filtered = filterBySearch(filtered, q.Search)
	sortProducts(filtered, q.Sort)
	return filtered
}

func filterByCategory(products []catalog.Product, category string) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	if category == "" {
		return append(result, products...)
	}
	for _, p := range products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

func filterBySearch(products []catalog.Product, search string) []catalog.Product {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return products
	}

	result := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			result = append(result, p)
		}
	}
	return result
}

func sortProducts(products []catalog.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title < products[j].Title
		})
	default:
		// Original catalog order preserved.
	}
}

// paginate slices out the 1-based page, clamping the requested page into
// the valid range when the filtered set is smaller than the request.
func (p *Pipeline) paginate(filtered []catalog.Product, page int) Result {
	totalPages := (len(filtered) + p.pageSize - 1) / p.pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * p.pageSize
	end := start + p.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Items:      filtered[start:end],
		Total:      len(filtered),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   p.pageSize,
	}
}
