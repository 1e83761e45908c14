package sync

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
)

// fakeProductIndexer records calls and fails on demand.
type fakeProductIndexer struct {
	indexErr  error
	deleteErr error
	bulkErr   error
	failIDs   []string

	indexed []domainsearch.ProductDocument
	deleted []string
	// docs holds the last document per id, mimicking an id-keyed index.
	docs map[string]domainsearch.ProductDocument
}

func newFakeProductIndexer() *fakeProductIndexer {
	return &fakeProductIndexer{docs: map[string]domainsearch.ProductDocument{}}
}

func (f *fakeProductIndexer) Index(_ context.Context, doc domainsearch.ProductDocument) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed = append(f.indexed, doc)
	f.docs[doc.DocumentID()] = doc

	return nil
}

func (f *fakeProductIndexer) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.docs, id)

	return nil
}

func (f *fakeProductIndexer) Bulk(_ context.Context, docs []domainsearch.ProductDocument) ([]string, error) {
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	for _, doc := range docs {
		failed := false
		for _, id := range f.failIDs {
			if doc.DocumentID() == id {
				failed = true

				break
			}
		}
		if failed {
			continue
		}
		f.indexed = append(f.indexed, doc)
		f.docs[doc.DocumentID()] = doc
	}

	return f.failIDs, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleProduct(id uint) *entity.Product {
	return &entity.Product{
		ID:                 id,
		SKU:                "SKU-001",
		Title:              "Wireless Keyboard",
		Description:        "Low profile wireless keyboard",
		Price:              59.90,
		DiscountPercentage: 10,
		Rating:             4.2,
		Stock:              12,
		Tags:               []string{"electronics", "accessories"},
		Category:           &entity.Category{ID: 3, Name: "peripherals"},
		Brand:              &entity.Brand{ID: 7, Name: "Keytron"},
		CreatedAt:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductSinkOnCreateIndexesDocument(t *testing.T) {
	t.Parallel()

	index := newFakeProductIndexer()
	sink := NewProductSink(index, discardLogger())

	sink.OnCreate(context.Background(), sampleProduct(42))

	assert.Len(t, index.indexed, 1)
	assert.Equal(t, "42", index.indexed[0].DocumentID())
	assert.Equal(t, "peripherals", index.indexed[0].Category)
	assert.Equal(t, "Keytron", index.indexed[0].Brand)
}

func TestProductSinkOnUpdateReindexesFullDocument(t *testing.T) {
	t.Parallel()

	index := newFakeProductIndexer()
	sink := NewProductSink(index, discardLogger())

	product := sampleProduct(42)
	sink.OnCreate(context.Background(), product)

	product.Brand = &entity.Brand{ID: 8, Name: "Altkey"}
	sink.OnUpdate(context.Background(), product)

	assert.Len(t, index.indexed, 2)
	assert.Equal(t, "Altkey", index.docs["42"].Brand)
}

func TestProductSinkOnDeleteRemovesDocument(t *testing.T) {
	t.Parallel()

	index := newFakeProductIndexer()
	sink := NewProductSink(index, discardLogger())

	sink.OnCreate(context.Background(), sampleProduct(42))
	sink.OnDelete(context.Background(), 42)

	assert.Equal(t, []string{"42"}, index.deleted)
	assert.Empty(t, index.docs)
}

// The sink must never surface an index failure, whatever the operation.
func TestProductSinkSwallowsIndexFailures(t *testing.T) {
	t.Parallel()

	index := newFakeProductIndexer()
	index.indexErr = errors.New("index unreachable")
	index.deleteErr = errors.New("index unreachable")
	sink := NewProductSink(index, discardLogger())

	assert.NotPanics(t, func() {
		sink.OnCreate(context.Background(), sampleProduct(1))
		sink.OnUpdate(context.Background(), sampleProduct(1))
		sink.OnDelete(context.Background(), 1)
	})
	assert.Empty(t, index.indexed)
	assert.Empty(t, index.deleted)
}

type fakeArticleIndexer struct {
	indexErr error

	indexed []domainsearch.ArticleDocument
	updates map[string]map[string]any
	deleted []string
}

func (f *fakeArticleIndexer) Index(_ context.Context, doc domainsearch.ArticleDocument) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed = append(f.indexed, doc)

	return nil
}

func (f *fakeArticleIndexer) Update(_ context.Context, id string, partial map[string]any) error {
	if f.updates == nil {
		f.updates = map[string]map[string]any{}
	}
	f.updates[id] = partial

	return nil
}

func (f *fakeArticleIndexer) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}

func TestArticleSinkOnUpdateSendsPartialDocument(t *testing.T) {
	t.Parallel()

	index := &fakeArticleIndexer{}
	sink := NewArticleSink(index, discardLogger())

	sink.OnUpdate(context.Background(), &entity.Article{
		ID:        7,
		Title:     "Rolling upgrades",
		Content:   "body",
		Summary:   "tl;dr",
		Published: true,
	})

	partial := index.updates["7"]
	assert.Equal(t, "Rolling upgrades", partial["title"])
	assert.Equal(t, true, partial["published"])
	assert.NotContains(t, partial, "authorId")
}

func TestArticleSinkSwallowsIndexFailures(t *testing.T) {
	t.Parallel()

	index := &fakeArticleIndexer{indexErr: errors.New("index unreachable")}
	sink := NewArticleSink(index, discardLogger())

	assert.NotPanics(t, func() {
		sink.OnCreate(context.Background(), &entity.Article{ID: 7, Title: "x"})
	})
	assert.Empty(t, index.indexed)
}

type fakeUserIndexer struct {
	indexed []domainsearch.UserDocument
	updates map[string]map[string]any
	deleted []string
}

func (f *fakeUserIndexer) Index(_ context.Context, doc domainsearch.UserDocument) error {
	f.indexed = append(f.indexed, doc)

	return nil
}

func (f *fakeUserIndexer) Update(_ context.Context, id string, partial map[string]any) error {
	if f.updates == nil {
		f.updates = map[string]map[string]any{}
	}
	f.updates[id] = partial

	return nil
}

func (f *fakeUserIndexer) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)

	return nil
}

func TestUserSinkOnUpdateNeverTouchesEmail(t *testing.T) {
	t.Parallel()

	index := &fakeUserIndexer{}
	sink := NewUserSink(index, discardLogger())

	sink.OnUpdate(context.Background(), &entity.User{
		ID:    3,
		Email: "a@example.com",
		Name:  "Renamed",
	})

	partial := index.updates["3"]
	assert.Equal(t, "Renamed", partial["name"])
	assert.NotContains(t, partial, "email")
}
