// Package usecase defines the application's use case interfaces and
// their input/output types.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
)

// Outcome reports which read path produced a search result. Callers
// that care (response headers, logging, tests) can tell a degraded
// database answer from a scored index answer.
type Outcome string

const (
	// OutcomeIndex means the search index answered.
	OutcomeIndex Outcome = "index"
	// OutcomeFallback means the index failed and the database answered.
	OutcomeFallback Outcome = "fallback"
)

// CreateProductInput represents the input for creating a product.
// Category, brand and tags arrive as names and are resolved or lazily
// created during the write.
type CreateProductInput struct {
	SKU                  string   `json:"sku" validate:"required"`
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description"`
	Category             string   `json:"category" validate:"required"`
	Brand                string   `json:"brand" validate:"required"`
	Tags                 []string `json:"tags"`
	Price                float64  `json:"price" validate:"gte=0"`
	DiscountPercentage   float64  `json:"discount_percentage" validate:"gte=0,lte=100"`
	Rating               float64  `json:"rating" validate:"gte=0,lte=5"`
	Stock                int      `json:"stock" validate:"gte=0"`
	MinimumOrderQuantity int      `json:"minimum_order_quantity"`
	Weight               float64  `json:"weight"`
	WarrantyInformation  string   `json:"warranty_information"`
	ShippingInformation  string   `json:"shipping_information"`
	AvailabilityStatus   string   `json:"availability_status"`
	ReturnPolicy         string   `json:"return_policy"`
	Barcode              string   `json:"barcode"`
	Thumbnail            string   `json:"thumbnail"`
	Images               []string `json:"images"`
}

// UpdateProductInput represents the input for updating a product. Nil
// fields keep their stored value.
type UpdateProductInput struct {
	SKU                  *string   `json:"sku,omitempty"`
	Title                *string   `json:"title,omitempty"`
	Description          *string   `json:"description,omitempty"`
	Category             *string   `json:"category,omitempty"`
	Brand                *string   `json:"brand,omitempty"`
	Tags                 *[]string `json:"tags,omitempty"`
	Price                *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage   *float64  `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Rating               *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Stock                *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	MinimumOrderQuantity *int      `json:"minimum_order_quantity,omitempty"`
	Weight               *float64  `json:"weight,omitempty"`
	WarrantyInformation  *string   `json:"warranty_information,omitempty"`
	ShippingInformation  *string   `json:"shipping_information,omitempty"`
	AvailabilityStatus   *string   `json:"availability_status,omitempty"`
	ReturnPolicy         *string   `json:"return_policy,omitempty"`
	Barcode              *string   `json:"barcode,omitempty"`
	Thumbnail            *string   `json:"thumbnail,omitempty"`
	Images               *[]string `json:"images,omitempty"`
}

// ListProductsInput carries the faceted listing parameters after HTTP
// parsing. Page is 1-based.
type ListProductsInput struct {
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
	Page        int
	Limit       int
}

// ProductPage is one faceted listing page. Items are denormalized
// index documents regardless of which path produced them, so the
// response shape never changes when the index is down.
type ProductPage struct {
	Products []search.ProductDocument
	Total    int64
	Outcome  Outcome
}

// ReindexResult summarizes one bulk reindex run.
type ReindexResult struct {
	Indexed int `json:"indexed"`
	Failed  int `json:"failed"`
}

// ProductUsecase defines the product management use cases.
type ProductUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	// Reindex rebuilds the whole product index from the database. It is
	// the only reconciliation mechanism after failed index syncs and is
	// triggered manually.
	Reindex(ctx context.Context) (*ReindexResult, error)
}
