package search

import (
	"context"

	domainsearch "catalog/internal/domain/search"

	"github.com/elastic/go-elasticsearch/v8"
)

// UserIndex is the typed adapter for the users index.
type UserIndex struct {
	es *elasticsearch.Client
}

// NewUserIndex is the constructor for UserIndex.
func NewUserIndex(es *elasticsearch.Client) *UserIndex {
	return &UserIndex{es: es}
}

func (ix *UserIndex) Ensure(ctx context.Context) error {
	return ensureIndex(ctx, ix.es, domainsearch.UserIndex, userIndexMapping())
}

func (ix *UserIndex) Index(ctx context.Context, doc domainsearch.UserDocument) error {
	return indexDocument(ctx, ix.es, domainsearch.UserIndex, doc.DocumentID(), doc)
}

func (ix *UserIndex) Update(ctx context.Context, id string, partial map[string]any) error {
	return updateDocument(ctx, ix.es, domainsearch.UserIndex, id, partial)
}

func (ix *UserIndex) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, ix.es, domainsearch.UserIndex, id)
}

func (ix *UserIndex) Search(ctx context.Context, query string, limit, offset int) (*domainsearch.Page[domainsearch.UserDocument], error) {
	result, err := runSearch[domainsearch.UserDocument](ctx, ix.es, domainsearch.UserIndex, BuildUserQuery(query, limit, offset))
	if err != nil {
		return nil, err
	}

	page := &domainsearch.Page[domainsearch.UserDocument]{
		Items: make([]domainsearch.UserDocument, 0, len(result.Hits.Hits)),
		Total: result.Hits.Total.Value,
	}
	for _, hit := range result.Hits.Hits {
		page.Items = append(page.Items, hit.Source)
	}

	return page, nil
}
