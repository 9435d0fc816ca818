package models

import "time"

type Promotion struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:255;not null"`
	Slug         string `gorm:"size:255;not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	DiscountText string `gorm:"size:255"`

	// Start and end are independent; the admin may set either or both,
	// and they are deliberately not validated against each other.
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}
