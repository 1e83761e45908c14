package search

import (
	"context"

	domainsearch "catalog/internal/domain/search"

	"github.com/elastic/go-elasticsearch/v8"
)

// ArticleIndex is the typed adapter for the articles index.
type ArticleIndex struct {
	es *elasticsearch.Client
}

// NewArticleIndex is the constructor for ArticleIndex.
func NewArticleIndex(es *elasticsearch.Client) *ArticleIndex {
	return &ArticleIndex{es: es}
}

func (ix *ArticleIndex) Ensure(ctx context.Context) error {
	return ensureIndex(ctx, ix.es, domainsearch.ArticleIndex, articleIndexMapping())
}

func (ix *ArticleIndex) Index(ctx context.Context, doc domainsearch.ArticleDocument) error {
	return indexDocument(ctx, ix.es, domainsearch.ArticleIndex, doc.DocumentID(), doc)
}

func (ix *ArticleIndex) Update(ctx context.Context, id string, partial map[string]any) error {
	return updateDocument(ctx, ix.es, domainsearch.ArticleIndex, id, partial)
}

func (ix *ArticleIndex) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, ix.es, domainsearch.ArticleIndex, id)
}

// Search runs a published-aware full-text query over articles.
func (ix *ArticleIndex) Search(ctx context.Context, query string, publishedOnly bool, limit, offset int) (*domainsearch.Page[domainsearch.ArticleDocument], error) {
	result, err := runSearch[domainsearch.ArticleDocument](ctx, ix.es, domainsearch.ArticleIndex, BuildArticleQuery(query, publishedOnly, limit, offset))
	if err != nil {
		return nil, err
	}

	page := &domainsearch.Page[domainsearch.ArticleDocument]{
		Items: make([]domainsearch.ArticleDocument, 0, len(result.Hits.Hits)),
		Total: result.Hits.Total.Value,
	}
	for _, hit := range result.Hits.Hits {
		page.Items = append(page.Items, hit.Source)
	}

	return page, nil
}
