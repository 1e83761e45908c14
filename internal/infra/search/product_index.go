package search

import (
	"context"

	domainsearch "catalog/internal/domain/search"
	"catalog/internal/errors"

	"github.com/elastic/go-elasticsearch/v8"
)

// ProductIndex is the typed adapter for the products index.
type ProductIndex struct {
	es *elasticsearch.Client
}

// NewProductIndex is the constructor for ProductIndex.
func NewProductIndex(es *elasticsearch.Client) *ProductIndex {
	return &ProductIndex{es: es}
}

// Ensure creates the products index with its mapping when missing.
func (ix *ProductIndex) Ensure(ctx context.Context) error {
	return ensureIndex(ctx, ix.es, domainsearch.ProductIndex, productIndexMapping())
}

// Index upserts one product document keyed by the entity id.
func (ix *ProductIndex) Index(ctx context.Context, doc domainsearch.ProductDocument) error {
	return indexDocument(ctx, ix.es, domainsearch.ProductIndex, doc.DocumentID(), doc)
}

// Update applies a partial document.
func (ix *ProductIndex) Update(ctx context.Context, id string, partial map[string]any) error {
	return updateDocument(ctx, ix.es, domainsearch.ProductIndex, id, partial)
}

// Delete removes the document for the given entity id.
func (ix *ProductIndex) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, ix.es, domainsearch.ProductIndex, id)
}

// Search runs the faceted query and returns one page of denormalized
// documents plus the total match count.
func (ix *ProductIndex) Search(ctx context.Context, filter domainsearch.ProductFilter) (*domainsearch.Page[domainsearch.ProductDocument], error) {
	result, err := runSearch[domainsearch.ProductDocument](ctx, ix.es, domainsearch.ProductIndex, BuildProductQuery(filter))
	if err != nil {
		return nil, err
	}

	page := &domainsearch.Page[domainsearch.ProductDocument]{
		Items: make([]domainsearch.ProductDocument, 0, len(result.Hits.Hits)),
		Total: result.Hits.Total.Value,
	}
	for _, hit := range result.Hits.Hits {
		page.Items = append(page.Items, hit.Source)
	}

	return page, nil
}

// Suggest runs the zero-document autosuggest aggregation for one facet.
func (ix *ProductIndex) Suggest(ctx context.Context, facet domainsearch.Facet, query string, size int) ([]domainsearch.Suggestion, error) {
	result, err := runSearch[struct{}](ctx, ix.es, domainsearch.ProductIndex, BuildSuggestQuery(facet, query, size))
	if err != nil {
		return nil, err
	}

	agg, ok := result.Aggregations[suggestionAggName]
	if !ok {
		return nil, errors.Errorf("suggest %s: aggregation missing from response", facet)
	}

	suggestions := make([]domainsearch.Suggestion, 0, len(agg.Buckets))
	for _, bucket := range agg.Buckets {
		suggestions = append(suggestions, domainsearch.Suggestion{
			Text:  bucket.Key,
			Count: bucket.DocCount,
		})
	}

	return suggestions, nil
}

// Bulk indexes a batch of documents in one request. Per-item failures
// are returned as document ids; the rest of the batch still commits.
func (ix *ProductIndex) Bulk(ctx context.Context, docs []domainsearch.ProductDocument) (failed []string, err error) {
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(docs))
	payload := make([]any, len(docs))
	for i, doc := range docs {
		ids[i] = doc.DocumentID()
		payload[i] = doc
	}

	return bulkIndex(ctx, ix.es, domainsearch.ProductIndex, ids, payload)
}
