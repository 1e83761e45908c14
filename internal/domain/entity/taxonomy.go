package entity

// Category is a product facet, many-to-one from Product. Categories are
// created lazily (find-or-create) when a product references an unknown
// name.
type Category struct {
	ID   uint
	Name string
}

// Brand is a product facet, many-to-one from Product, created lazily
// like Category.
type Brand struct {
	ID   uint
	Name string
}

// Tag is a product facet in a many-to-many relation with Product.
type Tag struct {
	ID   uint
	Name string
}
