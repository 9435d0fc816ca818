package migrations

import (
	"github.com/karnaval-obuv/shop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Subcategory{}, &models.Product{}, &models.Promotion{})
}
