package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
)

// CatalogService is the read surface shared by the storefront and the
// admin listings. Size filtering and filter-value aggregation happen here
// in Go, because sizes live as serialized lists on the row.
type CatalogService struct {
	categoryRepo    repositories.CategoryRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
	promotionRepo   repositories.PromotionRepositoryImpl
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	promotionRepo repositories.PromotionRepositoryImpl,
) *CatalogService {
	return &CatalogService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		promotionRepo:   promotionRepo,
	}
}

// ProductQuery is the public listing request: an optional category scope
// plus the storefront filter controls.
type ProductQuery struct {
	CategoryID    *uint
	SubcategoryID *uint
	Size          *int
	Color         string
	OnlyNew       bool
	OnlyFeatured  bool
	OnlyOnSale    bool
	Limit         int
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	Products      int64
	NewItems      int64
	OnSale        int64
	Promotions    int64
	Categories    int64
	Subcategories int64
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *CatalogService) SubcategoryBySlug(ctx context.Context, categoryID uint, slug string) (*models.Subcategory, error) {
	return s.subcategoryRepo.GetBySlug(ctx, categoryID, slug)
}

func (s *CatalogService) SubcategoriesByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	return s.subcategoryRepo.GetByCategoryID(ctx, categoryID)
}

// Products runs a public listing: active rows only, newest first. Size
// and color filters are applied over the fetched rows, since sizes live
// as serialized lists and colors share the same post-fetch path.
func (s *CatalogService) Products(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	filter := repositories.ProductListFilter{
		CategoryID:    q.CategoryID,
		SubcategoryID: q.SubcategoryID,
		OnlyNew:       q.OnlyNew,
		OnlyFeatured:  q.OnlyFeatured,
		OnlyOnSale:    q.OnlyOnSale,
	}
	// Size and color filtering discard rows after the fetch, so the limit
	// can only be pushed down when neither filter is in play.
	if q.Size == nil && q.Color == "" {
		filter.Limit = q.Limit
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products = FilterByColor(products, q.Color)
	if q.Size != nil {
		products = FilterBySize(products, *q.Size)
	}
	if q.Limit > 0 && len(products) > q.Limit {
		products = products[:q.Limit]
	}
	return products, nil
}

func (s *CatalogService) ProductByIDSlug(ctx context.Context, id uint, slug string) (*models.Product, error) {
	return s.productRepo.GetActiveByIDSlug(ctx, id, slug)
}

// ProductByID is the admin lookup; it resolves soft-deleted rows too.
func (s *CatalogService) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// AdminProducts is the admin listing: soft-deleted rows are included only
// when showDeleted is set, search is a case-insensitive match on name.
func (s *CatalogService) AdminProducts(ctx context.Context, categoryID, subcategoryID *uint, search string, showDeleted bool) ([]models.Product, error) {
	return s.productRepo.List(ctx, repositories.ProductListFilter{
		CategoryID:      categoryID,
		SubcategoryID:   subcategoryID,
		Search:          search,
		IncludeInactive: showDeleted,
	})
}

func (s *CatalogService) RecentProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return s.productRepo.List(ctx, repositories.ProductListFilter{
		IncludeInactive: true,
		Limit:           limit,
	})
}

func (s *CatalogService) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.promotionRepo.GetActive(ctx)
}

// AllPromotions is the admin listing; inactive promotions are included.
func (s *CatalogService) AllPromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.promotionRepo.GetAll(ctx)
}

func (s *CatalogService) PromotionByID(ctx context.Context, id uint) (*models.Promotion, error) {
	return s.promotionRepo.GetByID(ctx, id)
}

func (s *CatalogService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.Products, err = s.productRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.NewItems, err = s.productRepo.CountActiveNew(ctx); err != nil {
		return nil, fmt.Errorf("failed to count new products: %w", err)
	}
	if stats.OnSale, err = s.productRepo.CountOnSale(ctx); err != nil {
		return nil, fmt.Errorf("failed to count on-sale products: %w", err)
	}
	if stats.Promotions, err = s.promotionRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count promotions: %w", err)
	}
	if stats.Categories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if stats.Subcategories, err = s.subcategoryRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to count subcategories: %w", err)
	}
	return stats, nil
}

// FilterValues are the distinct sizes and colors available across a
// category's active products, for populating the storefront filter
// controls. Sizes come back numerically ascending, colors lexicographic.
type FilterValues struct {
	Sizes  []int
	Colors []string
}

func (s *CatalogService) AvailableFilters(ctx context.Context, categoryID uint) (*FilterValues, error) {
	products, err := s.productRepo.List(ctx, repositories.ProductListFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list products for filters: %w", err)
	}
	return CollectFilterValues(products), nil
}

// FilterBySize keeps products whose parsed size list contains size.
// Products with absent or malformed size data match nothing.
func FilterBySize(products []models.Product, size int) []models.Product {
	var matched []models.Product
	for _, p := range products {
		if p.HasSize(size) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByColor keeps products whose color label equals color exactly.
// An empty filter keeps everything; a product without a color never
// matches a non-empty filter.
func FilterByColor(products []models.Product, color string) []models.Product {
	if color == "" {
		return products
	}
	var matched []models.Product
	for _, p := range products {
		if p.Color != "" && p.Color == color {
			matched = append(matched, p)
		}
	}
	return matched
}

func CollectFilterValues(products []models.Product) *FilterValues {
	sizeSet := map[int]bool{}
	colorSet := map[string]bool{}
	for _, p := range products {
		for _, size := range p.Sizes() {
			sizeSet[size] = true
		}
		if p.Color != "" {
			colorSet[p.Color] = true
		}
	}

	values := &FilterValues{}
	for size := range sizeSet {
		values.Sizes = append(values.Sizes, size)
	}
	sort.Ints(values.Sizes)
	for color := range colorSet {
		values.Colors = append(values.Colors, color)
	}
	sort.Strings(values.Colors)
	return values
}
