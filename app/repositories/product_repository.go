package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/karnaval-obuv/shop/app/models"
	"gorm.io/gorm"
)

// ProductListFilter narrows a product listing. Zero value lists every
// active product, newest first.
type ProductListFilter struct {
	CategoryID    *uint
	SubcategoryID *uint
	Search        string
	OnlyNew       bool
	OnlyFeatured  bool
	OnlyOnSale    bool

	// IncludeInactive is the admin "show deleted" view. Public listings
	// never set it.
	IncludeInactive bool

	Limit int
}

type ProductRepositoryImpl interface {
	List(ctx context.Context, filter ProductListFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetActiveByIDSlug(ctx context.Context, id uint, slug string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
	CountActive(ctx context.Context) (int64, error)
	CountActiveNew(ctx context.Context) (int64, error)
	CountOnSale(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// escapeLike neutralizes LIKE metacharacters so a search term matches as
// a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

// List eagerly resolves Subcategory and its Category so rendering never
// triggers additional lookups.
func (r *productRepository) List(ctx context.Context, filter ProductListFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Subcategory").
		Preload("Subcategory.Category")

	if !filter.IncludeInactive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Where("subcategories.category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("products.subcategory_id = ?", *filter.SubcategoryID)
	}
	if filter.Search != "" {
		keyword := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(products.name) LIKE ?", keyword)
	}
	if filter.OnlyNew {
		query = query.Where("products.is_new = ?", true)
	}
	if filter.OnlyFeatured {
		query = query.Where("products.is_featured = ?", true)
	}
	if filter.OnlyOnSale {
		query = query.Where("products.old_price IS NOT NULL AND products.old_price > products.price")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var products []models.Product
	if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Subcategory").
		Preload("Subcategory.Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetActiveByIDSlug backs the public detail page, where the URL carries
// both the numeric id and the slug.
func (r *productRepository) GetActiveByIDSlug(ctx context.Context, id uint, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Subcategory").
		Preload("Subcategory.Category").
		First(&product, "id = ? AND slug = ? AND is_active = ?", id, slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}

func (r *productRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountActiveNew(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND is_new = ?", true, true).
		Count(&count).Error
	return count, err
}

// CountOnSale counts active products whose old price still exceeds the
// current one. The "on sale" set is computed, never stored.
func (r *productRepository) CountOnSale(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND old_price IS NOT NULL AND old_price > price", true).
		Count(&count).Error
	return count, err
}
