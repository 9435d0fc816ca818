package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductSizes(t *testing.T) {
	assert.Equal(t, []int{36, 37, 38}, (&Product{SizesJSON: "[36,37,38]"}).Sizes())
	assert.Nil(t, (&Product{}).Sizes())
	assert.Nil(t, (&Product{SizesJSON: "not json"}).Sizes())
	assert.Nil(t, (&Product{SizesJSON: `["a","b"]`}).Sizes())
}

func TestProductHasSize(t *testing.T) {
	product := &Product{SizesJSON: "[36,37,38]"}
	assert.True(t, product.HasSize(37))
	assert.False(t, product.HasSize(40))

	broken := &Product{SizesJSON: "{"}
	assert.False(t, broken.HasSize(37))
}

func TestProductHasDiscount(t *testing.T) {
	price := decimal.NewFromInt(100)

	with := &Product{
		Price:    price,
		OldPrice: decimal.NullDecimal{Decimal: decimal.NewFromInt(150), Valid: true},
	}
	assert.True(t, with.HasDiscount())

	without := &Product{Price: price}
	assert.False(t, without.HasDiscount())

	equal := &Product{
		Price:    price,
		OldPrice: decimal.NullDecimal{Decimal: price, Valid: true},
	}
	assert.False(t, equal.HasDiscount())
}

func TestProductURLPath(t *testing.T) {
	product := &Product{ID: 12, Slug: "zimnie-sapogi-nordic"}
	assert.Equal(t, "/product/12-zimnie-sapogi-nordic", product.URLPath())
}
