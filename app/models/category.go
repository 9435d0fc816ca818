package models

type Category struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	Slug          string `gorm:"size:255;not null;uniqueIndex"`
	Icon          string `gorm:"size:32"`
	SortOrder     int    `gorm:"not null;default:0"`
	Subcategories []Subcategory
}
