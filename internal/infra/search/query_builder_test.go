package search

import (
	"testing"

	domainsearch "catalog/internal/domain/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 {
	return &v
}

func boolQueryOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	query, ok := body["query"].(map[string]any)
	require.True(t, ok)
	boolQuery, ok := query["bool"].(map[string]any)
	require.True(t, ok)

	return boolQuery
}

func filtersOf(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()

	raw, ok := boolQueryOf(t, body)["filter"]
	if !ok {
		return nil
	}
	filters, ok := raw.([]map[string]any)
	require.True(t, ok)

	return filters
}

func TestBuildProductQuery_TextSearch(t *testing.T) {
	body := BuildProductQuery(domainsearch.ProductFilter{Query: "wireles headphones", Limit: 10})

	must := boolQueryOf(t, body)["must"].([]map[string]any)
	require.Len(t, must, 1)

	multiMatch := must[0]["multi_match"].(map[string]any)
	assert.Equal(t, "wireles headphones", multiMatch["query"])
	assert.Equal(t, []string{"title^3", "description^2", "brand", "category", "tags"}, multiMatch["fields"])
	assert.Equal(t, "AUTO", multiMatch["fuzziness"])
}

func TestBuildProductQuery_NoTextMatchesAll(t *testing.T) {
	body := BuildProductQuery(domainsearch.ProductFilter{Limit: 10})

	must := boolQueryOf(t, body)["must"].([]map[string]any)
	require.Len(t, must, 1)
	assert.Contains(t, must[0], "match_all")
	assert.Nil(t, filtersOf(t, body))
}

func TestBuildProductQuery_FacetTermFilters(t *testing.T) {
	body := BuildProductQuery(domainsearch.ProductFilter{
		Brands:     []string{"Acme", "Globex"},
		Categories: []string{"Electronics"},
		Tags:       []string{"sale"},
	})

	filters := filtersOf(t, body)
	require.Len(t, filters, 3)
	assert.Equal(t, map[string]any{"brand.keyword": []string{"Acme", "Globex"}}, filters[0]["terms"])
	assert.Equal(t, map[string]any{"category.keyword": []string{"Electronics"}}, filters[1]["terms"])
	assert.Equal(t, map[string]any{"tags.keyword": []string{"sale"}}, filters[2]["terms"])
}

func TestBuildProductQuery_RangeFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter domainsearch.ProductFilter
		field  string
		want   map[string]any
	}{
		{
			name:   "closed price range",
			filter: domainsearch.ProductFilter{MinPrice: f64(10), MaxPrice: f64(99.5)},
			field:  "price",
			want:   map[string]any{"gte": 10.0, "lte": 99.5},
		},
		{
			name:   "open ended min price",
			filter: domainsearch.ProductFilter{MinPrice: f64(25)},
			field:  "price",
			want:   map[string]any{"gte": 25.0},
		},
		{
			name:   "min rating",
			filter: domainsearch.ProductFilter{MinRating: f64(4)},
			field:  "rating",
			want:   map[string]any{"gte": 4.0},
		},
		{
			name:   "discount lower bound",
			filter: domainsearch.ProductFilter{MinDiscount: f64(10)},
			field:  "discountPercentage",
			want:   map[string]any{"gte": 10.0},
		},
		{
			name:   "discount excludes below bound",
			filter: domainsearch.ProductFilter{MinDiscount: f64(25)},
			field:  "discountPercentage",
			want:   map[string]any{"gte": 25.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := filtersOf(t, BuildProductQuery(tt.filter))
			require.Len(t, filters, 1)
			assert.Equal(t, map[string]any{tt.field: tt.want}, filters[0]["range"])
		})
	}
}

func TestBuildProductQuery_InStock(t *testing.T) {
	filters := filtersOf(t, BuildProductQuery(domainsearch.ProductFilter{InStock: true}))
	require.Len(t, filters, 1)
	assert.Equal(t, map[string]any{"stock": map[string]any{"gt": 0}}, filters[0]["range"])
}

func TestBuildProductQuery_Sorting(t *testing.T) {
	tests := []struct {
		name      string
		sort      string
		order     string
		wantField string
		wantOrder string
	}{
		{name: "default is relevance", sort: "", order: "", wantField: "_score", wantOrder: "desc"},
		{name: "newest alias", sort: "newest", order: "asc", wantField: "createdAt", wantOrder: "asc"},
		{name: "discount alias", sort: "discount", order: "", wantField: "discountPercentage", wantOrder: "desc"},
		{name: "plain field passthrough", sort: "price", order: "asc", wantField: "price", wantOrder: "asc"},
		{name: "unknown order defaults desc", sort: "price", order: "sideways", wantField: "price", wantOrder: "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := BuildProductQuery(domainsearch.ProductFilter{Sort: tt.sort, Order: tt.order})
			sort := body["sort"].([]map[string]any)
			require.Len(t, sort, 1)
			assert.Equal(t, map[string]any{"order": tt.wantOrder}, sort[0][tt.wantField])
		})
	}
}

func TestBuildProductQuery_Pagination(t *testing.T) {
	body := BuildProductQuery(domainsearch.ProductFilter{Limit: 20, Offset: 40})
	assert.Equal(t, 40, body["from"])
	assert.Equal(t, 20, body["size"])
}

func TestBuildSuggestQuery(t *testing.T) {
	body := BuildSuggestQuery(domainsearch.FacetBrand, "acm", 10)

	assert.Equal(t, 0, body["size"])

	match := body["query"].(map[string]any)["match"].(map[string]any)
	assert.Equal(t, map[string]any{"query": "acm", "operator": "and"}, match["brand.suggest"])

	agg := body["aggs"].(map[string]any)[suggestionAggName].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "brand.keyword", agg["field"])
	assert.Equal(t, 10, agg["size"])
	assert.Equal(t, map[string]any{"_count": "desc"}, agg["order"])
}

func TestBuildSuggestQuery_TagFacetFields(t *testing.T) {
	body := BuildSuggestQuery(domainsearch.FacetTag, "aud", 5)

	match := body["query"].(map[string]any)["match"].(map[string]any)
	assert.Contains(t, match, "tags.suggest")

	agg := body["aggs"].(map[string]any)[suggestionAggName].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "tags.keyword", agg["field"])
}

func TestBuildArticleQuery(t *testing.T) {
	body := BuildArticleQuery("go generics", true, 10, 20)

	boolQuery := boolQueryOf(t, body)
	must := boolQuery["must"].([]map[string]any)
	require.Len(t, must, 1)
	multiMatch := must[0]["multi_match"].(map[string]any)
	assert.Equal(t, []string{"title^3", "content", "summary^2"}, multiMatch["fields"])

	filters := boolQuery["filter"].([]map[string]any)
	require.Len(t, filters, 1)
	assert.Equal(t, map[string]any{"published": true}, filters[0]["term"])

	assert.Equal(t, 20, body["from"])
	assert.Equal(t, 10, body["size"])
}

func TestBuildArticleQuery_UnpublishedIncluded(t *testing.T) {
	body := BuildArticleQuery("draft", false, 10, 0)
	_, hasFilter := boolQueryOf(t, body)["filter"]
	assert.False(t, hasFilter)
}

func TestBuildUserQuery(t *testing.T) {
	body := BuildUserQuery("alice", 5, 0)

	multiMatch := body["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, []string{"name^2", "email"}, multiMatch["fields"])
	assert.Equal(t, "AUTO", multiMatch["fuzziness"])
}
