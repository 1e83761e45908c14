// Package entity contains the pure domain objects. They carry no
// persistence or transport concerns; mapping to gorm models and index
// documents happens at the infra boundary.
package entity

import "time"

// Product is the catalog's central entity. Category and Brand are
// many-to-one references resolved by id; Tags is the flattened set of
// tag names from the product/tag join relation.
type Product struct {
	ID                   uint
	CategoryID           uint
	BrandID              uint
	SKU                  string
	Title                string
	Description          string
	Price                float64
	DiscountPercentage   float64
	Rating               float64
	Stock                int
	MinimumOrderQuantity int
	Weight               float64
	WarrantyInformation  string
	ShippingInformation  string
	AvailabilityStatus   string
	ReturnPolicy         string
	Barcode              string
	Thumbnail            string
	Images               []string
	Tags                 []string

	Category *Category
	Brand    *Brand
	Reviews  []*Review

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountedPrice applies the discount percentage to the list price.
func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

// CategoryName returns the resolved category name, or "" when the
// relation was not loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.Name
}

// BrandName returns the resolved brand name, or "" when the relation
// was not loaded.
func (p *Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}

	return p.Brand.Name
}
