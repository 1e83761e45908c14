package search

// Sort aliases accepted by ProductFilter.Sort.
const (
	SortNewest   = "newest"
	SortDiscount = "discount"
)

// Facet identifies an autosuggest target field in the product index.
type Facet string

const (
	FacetBrand    Facet = "brand"
	FacetCategory Facet = "category"
	FacetTag      Facet = "tags"
)

// ProductFilter is the structured filter for faceted product search.
// Nil numeric bounds mean "unbounded on that side". Multiple values
// within one facet are OR-ed; facets are AND-ed with each other.
type ProductFilter struct {
	Query       string
	Brands      []string
	Categories  []string
	Tags        []string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	MinDiscount *float64
	MaxDiscount *float64
	InStock     bool
	Sort        string
	Order       string
	Limit       int
	Offset      int
}

// Suggestion is one autosuggest facet value with its document count.
type Suggestion struct {
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// Page is one window of search results plus the total match count.
type Page[T any] struct {
	Items []T
	Total int64
}
