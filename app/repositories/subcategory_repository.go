package repositories

import (
	"context"
	"errors"

	"github.com/karnaval-obuv/shop/app/models"
	"gorm.io/gorm"
)

type SubcategoryRepositoryImpl interface {
	GetByID(ctx context.Context, id uint) (*models.Subcategory, error)
	GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Subcategory, error)
	GetBySlug(ctx context.Context, categoryID uint, slug string) (*models.Subcategory, error)
	CountAll(ctx context.Context) (int64, error)
}

type subcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepositoryImpl {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC, id ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) GetBySlug(ctx context.Context, categoryID uint, slug string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&subcategory, "category_id = ? AND slug = ?", categoryID, slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subcategory{}).Count(&count).Error
	return count, err
}
