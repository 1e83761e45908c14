package search

import (
	domainsearch "catalog/internal/domain/search"
)

// BuildProductQuery translates a ProductFilter into an Elasticsearch
// query body.
//
// Free text becomes a fuzzy multi_match weighted toward the title;
// without text the query matches all documents. Facet values become
// unscored term filters on the exact-match sub-fields (OR within a
// facet, AND across facets). Numeric bounds become inclusive range
// filters, open on the absent side; InStock requires stock strictly
// greater than zero. Sort aliases map to their fields; without an
// explicit sort, relevance score descending wins. Offset/limit map
// directly to from/size; callers clamp before invoking.
func BuildProductQuery(f domainsearch.ProductFilter) map[string]any {
	var must []map[string]any
	var filter []map[string]any

	if f.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     f.Query,
				"fields":    []string{"title^3", "description^2", "brand", "category", "tags"},
				"fuzziness": "AUTO",
			},
		})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	if len(f.Brands) > 0 {
		filter = append(filter, map[string]any{"terms": map[string]any{"brand.keyword": f.Brands}})
	}
	if len(f.Categories) > 0 {
		filter = append(filter, map[string]any{"terms": map[string]any{"category.keyword": f.Categories}})
	}
	if len(f.Tags) > 0 {
		filter = append(filter, map[string]any{"terms": map[string]any{"tags.keyword": f.Tags}})
	}

	if rng := boundedRange(f.MinPrice, f.MaxPrice); rng != nil {
		filter = append(filter, map[string]any{"range": map[string]any{"price": rng}})
	}
	if f.MinRating != nil {
		filter = append(filter, map[string]any{"range": map[string]any{"rating": map[string]any{"gte": *f.MinRating}}})
	}
	if rng := boundedRange(f.MinDiscount, f.MaxDiscount); rng != nil {
		filter = append(filter, map[string]any{"range": map[string]any{"discountPercentage": rng}})
	}
	if f.InStock {
		filter = append(filter, map[string]any{"range": map[string]any{"stock": map[string]any{"gt": 0}}})
	}

	boolQuery := map[string]any{"must": must}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"sort":  buildSort(f.Sort, f.Order),
		"from":  f.Offset,
		"size":  f.Limit,
	}
}

func boundedRange(minValue, maxValue *float64) map[string]any {
	if minValue == nil && maxValue == nil {
		return nil
	}

	rng := map[string]any{}
	if minValue != nil {
		rng["gte"] = *minValue
	}
	if maxValue != nil {
		rng["lte"] = *maxValue
	}

	return rng
}

func buildSort(sort, order string) []map[string]any {
	if sort == "" {
		return []map[string]any{{"_score": map[string]any{"order": "desc"}}}
	}

	field := sort
	switch sort {
	case domainsearch.SortNewest:
		field = "createdAt"
	case domainsearch.SortDiscount:
		field = "discountPercentage"
	}

	if order != "asc" {
		order = "desc"
	}

	return []map[string]any{{field: map[string]any{"order": order}}}
}

// BuildSuggestQuery builds an autosuggest body: no result documents,
// a prefix match on the facet's edge-n-gram sub-field and a term
// aggregation on the exact-match sub-field ordered by document count.
func BuildSuggestQuery(facet domainsearch.Facet, query string, size int) map[string]any {
	field := string(facet)

	return map[string]any{
		"size": 0,
		"query": map[string]any{
			"match": map[string]any{
				field + ".suggest": map[string]any{
					"query":    query,
					"operator": "and",
				},
			},
		},
		"aggs": map[string]any{
			suggestionAggName: map[string]any{
				"terms": map[string]any{
					"field": field + ".keyword",
					"size":  size,
					"order": map[string]any{"_count": "desc"},
				},
			},
		},
	}
}

// BuildArticleQuery builds the full-text article search body. The
// published filter keeps unpublished drafts out of default search.
func BuildArticleQuery(query string, publishedOnly bool, limit, offset int) map[string]any {
	boolQuery := map[string]any{
		"must": []map[string]any{
			{
				"multi_match": map[string]any{
					"query":     query,
					"fields":    []string{"title^3", "content", "summary^2"},
					"fuzziness": "AUTO",
				},
			},
		},
	}
	if publishedOnly {
		boolQuery["filter"] = []map[string]any{
			{"term": map[string]any{"published": true}},
		}
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"from":  offset,
		"size":  limit,
	}
}

// BuildUserQuery builds the full-text user search body.
func BuildUserQuery(query string, limit, offset int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "email"},
				"fuzziness": "AUTO",
			},
		},
		"from": offset,
		"size": limit,
	}
}
