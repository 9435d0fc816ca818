package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint                `gorm:"primaryKey"`
	Name        string              `gorm:"size:255;not null"`
	Slug        string              `gorm:"size:255;not null;index"`
	Description string              `gorm:"type:text"`
	Price       decimal.Decimal     `gorm:"type:decimal(16,2);not null"`
	OldPrice    decimal.NullDecimal `gorm:"type:decimal(16,2)"`
	SizesJSON   string              `gorm:"size:255"`
	Color       string              `gorm:"size:64"`
	ImageURL    string              `gorm:"size:512"`
	IsActive    bool                `gorm:"not null;default:true"`
	IsNew       bool                `gorm:"not null;default:false"`
	IsFeatured  bool                `gorm:"not null;default:false"`
	CreatedAt   time.Time           `gorm:"not null"`

	SubcategoryID *uint
	Subcategory   *Subcategory
}

// Sizes parses SizesJSON. Malformed or empty data yields nil, never an error:
// a product with broken size data simply matches no size filter.
func (p *Product) Sizes() []int {
	if p.SizesJSON == "" {
		return nil
	}
	var sizes []int
	if err := json.Unmarshal([]byte(p.SizesJSON), &sizes); err != nil {
		return nil
	}
	return sizes
}

func (p *Product) HasSize(size int) bool {
	for _, s := range p.Sizes() {
		if s == size {
			return true
		}
	}
	return false
}

// HasDiscount reports whether the product carries a usable "was" price.
// The mutation service normalizes contradictory old prices away at write
// time, so this is a plain comparison.
func (p *Product) HasDiscount() bool {
	return p.OldPrice.Valid && p.OldPrice.Decimal.GreaterThan(p.Price)
}

// URLPath is the canonical detail URL. The numeric id disambiguates
// products whose slugs collide across subcategories.
func (p *Product) URLPath() string {
	return fmt.Sprintf("/product/%d-%s", p.ID, p.Slug)
}
