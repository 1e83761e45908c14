// Package search defines the domain's view of the secondary search
// index: denormalized documents, filter specifications and result
// shapes. Index documents are a projection of primary-store state at
// the last successful sync; they may lag or diverge when an index
// write failed, and only a bulk reindex reconciles them.
package search

import (
	"strconv"
	"time"

	"catalog/internal/domain/entity"
)

// Index names, one logical index per entity type.
const (
	ProductIndex = "products"
	ArticleIndex = "articles"
	UserIndex    = "users"
)

// ProductDocument is the denormalized product projection stored in the
// index. Field names must stay aligned with the index mapping.
type ProductDocument struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Brand              string    `json:"brand"`
	Tags               []string  `json:"tags"`
	Price              float64   `json:"price"`
	Stock              int       `json:"stock"`
	Rating             float64   `json:"rating"`
	DiscountPercentage float64   `json:"discountPercentage"`
	AvailabilityStatus string    `json:"availabilityStatus"`
	ReviewCount        int       `json:"review_count"`
	Thumbnail          string    `json:"thumbnail"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DocumentID converts the primary-store id to the index's native
// string identifier.
func (d ProductDocument) DocumentID() string {
	return strconv.FormatUint(uint64(d.ID), 10)
}

// NewProductDocument flattens a product entity into its index
// projection: related-entity names replace ids and the review count is
// computed from the loaded relation.
func NewProductDocument(product *entity.Product) ProductDocument {
	tags := product.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProductDocument{
		ID:                 product.ID,
		Title:              product.Title,
		Description:        product.Description,
		Category:           product.CategoryName(),
		Brand:              product.BrandName(),
		Tags:               tags,
		Price:              product.Price,
		Stock:              product.Stock,
		Rating:             product.Rating,
		DiscountPercentage: product.DiscountPercentage,
		AvailabilityStatus: product.AvailabilityStatus,
		ReviewCount:        len(product.Reviews),
		Thumbnail:          product.Thumbnail,
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}

// ArticleDocument is the denormalized article projection.
type ArticleDocument struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d ArticleDocument) DocumentID() string {
	return strconv.FormatUint(uint64(d.ID), 10)
}

func NewArticleDocument(article *entity.Article) ArticleDocument {
	return ArticleDocument{
		ID:        article.ID,
		AuthorID:  article.AuthorID,
		Title:     article.Title,
		Content:   article.Content,
		Summary:   article.Summary,
		Published: article.Published,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// UserDocument is the denormalized user projection.
type UserDocument struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d UserDocument) DocumentID() string {
	return strconv.FormatUint(uint64(d.ID), 10)
}

func NewUserDocument(user *entity.User) UserDocument {
	return UserDocument{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
