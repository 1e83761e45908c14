// Package model contains the GORM-specific structs mapped to the
// PostgreSQL schema. Mapping to domain entities happens in the
// postgres package.
package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement"`
	CategoryID           uint    `gorm:"not null;index"`
	BrandID              uint    `gorm:"not null;index"`
	SKU                  string  `gorm:"type:text;not null;uniqueIndex"`
	Title                string  `gorm:"type:text;not null"`
	Description          string  `gorm:"type:text"`
	Price                float64 `gorm:"type:decimal(12,2);not null"`
	DiscountPercentage   float64 `gorm:"type:decimal(5,2);not null;default:0"`
	Rating               float64 `gorm:"type:decimal(3,2);not null;default:0"`
	Stock                int     `gorm:"not null;default:0"`
	MinimumOrderQuantity int     `gorm:"not null;default:1"`
	Weight               float64 `gorm:"type:decimal(10,3)"`
	WarrantyInformation  string  `gorm:"type:text"`
	ShippingInformation  string  `gorm:"type:text"`
	AvailabilityStatus   string  `gorm:"type:text"`
	ReturnPolicy         string  `gorm:"type:text"`
	Barcode              string  `gorm:"type:text"`
	Thumbnail            string  `gorm:"type:text"`
	// Images is a small, schema-free list; stored as jsonb instead of a
	// join table.
	Images []string `gorm:"serializer:json;type:jsonb"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Brand    *BrandModel    `gorm:"foreignKey:BrandID"`
	Tags     []*TagModel    `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:TagID"`
	Reviews  []*ReviewModel `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
