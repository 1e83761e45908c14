package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{name: "twenty percent off", price: 100, discount: 20, want: 80.00},
		{name: "no discount", price: 49.99, discount: 0, want: 49.99},
		{name: "full discount", price: 10, discount: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: tt.price, DiscountPercentage: tt.discount}
			assert.InDelta(t, tt.want, p.DiscountedPrice(), 0.0001)
		})
	}
}

func TestProduct_RelationNames(t *testing.T) {
	p := &Product{}
	assert.Empty(t, p.CategoryName())
	assert.Empty(t, p.BrandName())

	p.Category = &Category{ID: 1, Name: "Electronics"}
	p.Brand = &Brand{ID: 2, Name: "Acme"}
	assert.Equal(t, "Electronics", p.CategoryName())
	assert.Equal(t, "Acme", p.BrandName())
}
