package models

type Subcategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Slug      string `gorm:"size:255;not null;index:idx_subcategory_slug,unique,composite:category_slug"`
	SortOrder int    `gorm:"not null;default:0"`

	// Slug uniqueness is scoped to the parent category: "sapogi" exists
	// under both the winter and demi-season categories.
	CategoryID uint `gorm:"not null;index:idx_subcategory_slug,unique,composite:category_slug"`
	Category   Category

	Products []Product
}
