package repositories

import (
	"context"
	"errors"

	"github.com/karnaval-obuv/shop/app/models"
	"gorm.io/gorm"
)

type PromotionRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Promotion, error)
	GetActive(ctx context.Context) ([]models.Promotion, error)
	GetByID(ctx context.Context, id uint) (*models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Save(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, promotion *models.Promotion) error
	CountActive(ctx context.Context) (int64, error)
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepositoryImpl {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) GetAll(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) GetActive(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) GetByID(ctx context.Context, id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) Save(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) Delete(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Delete(promotion).Error
}

func (r *promotionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Promotion{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
