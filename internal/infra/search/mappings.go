package search

// Index mappings. The product mapping must stay aligned with the query
// builder: facet fields carry a ".keyword" exact-match sub-field for
// term filters and aggregations, and a ".suggest" edge-n-gram sub-field
// (sizes 1-20, keyword-tokenized, lowercased) for autosuggest prefix
// matching.

func suggestSubField() map[string]any {
	return map[string]any{
		"type":            "text",
		"analyzer":        "suggest_analyzer",
		"search_analyzer": "search_analyzer",
	}
}

func facetField() map[string]any {
	return map[string]any{
		"type": "text",
		"fields": map[string]any{
			"keyword": map[string]any{"type": "keyword"},
			"suggest": suggestSubField(),
		},
	}
}

func productIndexMapping() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"analyzer": map[string]any{
					"suggest_analyzer": map[string]any{
						"tokenizer": "keyword",
						"filter":    []string{"lowercase", "edge_ngram_filter"},
					},
					"search_analyzer": map[string]any{
						"tokenizer": "keyword",
						"filter":    []string{"lowercase"},
					},
				},
				"filter": map[string]any{
					"edge_ngram_filter": map[string]any{
						"type":     "edge_ngram",
						"min_gram": 1,
						"max_gram": 20,
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"id": map[string]any{"type": "integer"},
				"title": map[string]any{
					"type":     "text",
					"analyzer": "standard",
					"fields": map[string]any{
						"suggest": suggestSubField(),
					},
				},
				"description":        map[string]any{"type": "text", "analyzer": "standard"},
				"category":           facetField(),
				"brand":              facetField(),
				"tags":               facetField(),
				"price":              map[string]any{"type": "float"},
				"stock":              map[string]any{"type": "integer"},
				"rating":             map[string]any{"type": "float"},
				"discountPercentage": map[string]any{"type": "float"},
				"availabilityStatus": map[string]any{"type": "keyword"},
				"review_count":       map[string]any{"type": "integer"},
				"thumbnail":          map[string]any{"type": "keyword"},
				"createdAt":          map[string]any{"type": "date"},
				"updatedAt":          map[string]any{"type": "date"},
			},
		},
	}
}

func articleIndexMapping() map[string]any {
	return map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":        map[string]any{"type": "integer"},
				"authorId":  map[string]any{"type": "integer"},
				"title":     map[string]any{"type": "text", "analyzer": "standard"},
				"content":   map[string]any{"type": "text", "analyzer": "standard"},
				"summary":   map[string]any{"type": "text", "analyzer": "standard"},
				"published": map[string]any{"type": "boolean"},
				"createdAt": map[string]any{"type": "date"},
				"updatedAt": map[string]any{"type": "date"},
			},
		},
	}
}

func userIndexMapping() map[string]any {
	return map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":        map[string]any{"type": "integer"},
				"email":     map[string]any{"type": "keyword"},
				"name":      map[string]any{"type": "text", "analyzer": "standard"},
				"createdAt": map[string]any{"type": "date"},
				"updatedAt": map[string]any{"type": "date"},
			},
		},
	}
}
