package sync

import (
	"context"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/errors"
	mockrepo "catalog/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reindexConfig(batchSize int) *config.Config {
	return &config.Config{Reindex: &config.ReindexConfig{BatchSize: batchSize}}
}

func productPage(ids ...uint) []*entity.Product {
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		p := sampleProduct(id)
		products = append(products, p)
	}

	return products
}

func TestReindexPagesThroughAllProducts(t *testing.T) {
	t.Parallel()

	repo := mockrepo.NewMockProductRepository(t)
	repo.On("FindAll", mock.Anything, 2, 0).Return(productPage(1, 2), nil)
	repo.On("FindAll", mock.Anything, 2, 2).Return(productPage(3), nil)

	index := newFakeProductIndexer()
	reindexer := NewProductReindexer(repo, index, reindexConfig(2), discardLogger())

	indexed, failed, err := reindexer.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, indexed)
	assert.Zero(t, failed)
	assert.Len(t, index.docs, 3)
}

// Running the reindex twice must leave the index in the same state:
// documents are keyed by entity id, so the second run overwrites the
// first instead of duplicating.
func TestReindexIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := mockrepo.NewMockProductRepository(t)
	repo.On("FindAll", mock.Anything, 10, 0).Return(productPage(1, 2, 3), nil).Twice()

	index := newFakeProductIndexer()
	reindexer := NewProductReindexer(repo, index, reindexConfig(10), discardLogger())

	_, _, err := reindexer.Reindex(context.Background())
	require.NoError(t, err)
	first := map[string]string{}
	for id, doc := range index.docs {
		first[id] = doc.Title
	}

	_, _, err = reindexer.Reindex(context.Background())
	require.NoError(t, err)

	assert.Len(t, index.docs, len(first))
	for id, doc := range index.docs {
		assert.Equal(t, first[id], doc.Title)
	}
}

func TestReindexContinuesPastFailedBatch(t *testing.T) {
	t.Parallel()

	repo := mockrepo.NewMockProductRepository(t)
	repo.On("FindAll", mock.Anything, 2, 0).Return(productPage(1, 2), nil)
	repo.On("FindAll", mock.Anything, 2, 2).Return(productPage(3, 4), nil)
	repo.On("FindAll", mock.Anything, 2, 4).Return([]*entity.Product{}, nil)

	index := newFakeProductIndexer()
	calls := 0
	reindexer := NewProductReindexer(repo, &flakyIndexer{inner: index, failFirst: 1, calls: &calls}, reindexConfig(2), discardLogger())

	indexed, failed, err := reindexer.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, indexed)
	assert.Equal(t, 2, failed)
}

func TestReindexCountsItemFailures(t *testing.T) {
	t.Parallel()

	repo := mockrepo.NewMockProductRepository(t)
	repo.On("FindAll", mock.Anything, 10, 0).Return(productPage(1, 2, 3), nil)

	index := newFakeProductIndexer()
	index.failIDs = []string{"2"}
	reindexer := NewProductReindexer(repo, index, reindexConfig(10), discardLogger())

	indexed, failed, err := reindexer.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, indexed)
	assert.Equal(t, 1, failed)
}

func TestReindexAbortsWhenPrimaryStoreFails(t *testing.T) {
	t.Parallel()

	repo := mockrepo.NewMockProductRepository(t)
	repo.On("FindAll", mock.Anything, 10, 0).Return(nil, errors.New("connection refused"))

	index := newFakeProductIndexer()
	reindexer := NewProductReindexer(repo, index, reindexConfig(10), discardLogger())

	_, _, err := reindexer.Reindex(context.Background())
	assert.Error(t, err)
	assert.Empty(t, index.docs)
}

// flakyIndexer fails the first failFirst Bulk calls, then delegates.
type flakyIndexer struct {
	inner     *fakeProductIndexer
	failFirst int
	calls     *int
}

func (f *flakyIndexer) Index(ctx context.Context, doc domainsearch.ProductDocument) error {
	return f.inner.Index(ctx, doc)
}

func (f *flakyIndexer) Delete(ctx context.Context, id string) error {
	return f.inner.Delete(ctx, id)
}

func (f *flakyIndexer) Bulk(ctx context.Context, docs []domainsearch.ProductDocument) ([]string, error) {
	*f.calls++
	if *f.calls <= f.failFirst {
		return nil, errors.New("bulk rejected")
	}

	return f.inner.Bulk(ctx, docs)
}
