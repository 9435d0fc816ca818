package services

import (
	"context"
	"testing"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func newTestCatalog() (*CatalogService, *fakeProductRepo, *fakePromotionRepo) {
	productRepo := newFakeProductRepo()
	promotionRepo := newFakePromotionRepo()
	categoryRepo := &fakeCategoryRepo{categories: []models.Category{{ID: 1, Name: "Зимняя обувь", Slug: "zimnyaya"}}}
	subcategoryRepo := &fakeSubcategoryRepo{subcategories: map[uint]*models.Subcategory{
		10: {ID: 10, Name: "Сапоги", Slug: "sapogi", CategoryID: 1},
	}}
	return NewCatalogService(categoryRepo, subcategoryRepo, productRepo, promotionRepo), productRepo, promotionRepo
}

// Soft-deleting a product must remove it from public listings and the
// active counts, while the admin show-deleted view still sees it.
func TestCatalogSoftDeleteVisibility(t *testing.T) {
	catalog, productRepo, _ := newTestCatalog()
	ctx := context.Background()

	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "Сапоги", IsActive: true, Price: decimal.NewFromInt(100)}))
	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "Ботинки", IsActive: false, Price: decimal.NewFromInt(90)}))

	public, err := catalog.Products(ctx, ProductQuery{})
	require.NoError(t, err)
	assert.Len(t, public, 1)

	adminDefault, err := catalog.AdminProducts(ctx, nil, nil, "", false)
	require.NoError(t, err)
	assert.Len(t, adminDefault, 1)

	adminAll, err := catalog.AdminProducts(ctx, nil, nil, "", true)
	require.NoError(t, err)
	assert.Len(t, adminAll, 2)

	stats, err := catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Products)
	assert.Equal(t, int64(1), stats.Categories)
	assert.Equal(t, int64(1), stats.Subcategories)
}

// A limit combined with a Go-side filter must not starve the result: the
// limit applies after filtering, not to the raw fetch.
func TestCatalogProductsColorFilterWithLimit(t *testing.T) {
	catalog, productRepo, _ := newTestCatalog()
	ctx := context.Background()

	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "Чёрные сапоги", Color: "чёрный", IsActive: true, Price: decimal.NewFromInt(100)}))
	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "Красные сапоги", Color: "красный", IsActive: true, Price: decimal.NewFromInt(110)}))

	products, err := catalog.Products(ctx, ProductQuery{Color: "красный", Limit: 1})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "красный", products[0].Color)

	size := 37
	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "37 размер", SizesJSON: "[37]", IsActive: true, Price: decimal.NewFromInt(120)}))
	products, err = catalog.Products(ctx, ProductQuery{Size: &size, Limit: 1})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].HasSize(size))
}

func TestCatalogStatsCountsOnSale(t *testing.T) {
	catalog, productRepo, promotionRepo := newTestCatalog()
	ctx := context.Background()

	require.NoError(t, productRepo.Create(ctx, &models.Product{
		Name: "Со скидкой", IsActive: true, IsNew: true,
		Price:    decimal.NewFromInt(100),
		OldPrice: decimal.NullDecimal{Decimal: decimal.NewFromInt(150), Valid: true},
	}))
	require.NoError(t, productRepo.Create(ctx, &models.Product{Name: "Без скидки", IsActive: true, Price: decimal.NewFromInt(100)}))
	require.NoError(t, promotionRepo.Create(ctx, &models.Promotion{Title: "Акция", IsActive: true}))
	require.NoError(t, promotionRepo.Create(ctx, &models.Promotion{Title: "Старая", IsActive: false}))

	stats, err := catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Products)
	assert.Equal(t, int64(1), stats.NewItems)
	assert.Equal(t, int64(1), stats.OnSale)
	assert.Equal(t, int64(1), stats.Promotions)
}

func TestFilterBySize(t *testing.T) {
	products := []models.Product{
		{ID: 1, SizesJSON: "[36,37,38]"},
		{ID: 2, SizesJSON: "[39,40]"},
		{ID: 3},
		{ID: 4, SizesJSON: "broken"},
	}

	matched := FilterBySize(products, 37)
	assert.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID)

	assert.Empty(t, FilterBySize(products, 42))
}

func TestFilterByColor(t *testing.T) {
	products := []models.Product{
		{ID: 1, Color: "чёрный"},
		{ID: 2, Color: "бежевый"},
		{ID: 3},
	}

	matched := FilterByColor(products, "чёрный")
	assert.Len(t, matched, 1)
	assert.Equal(t, uint(1), matched[0].ID)

	// No partial matching.
	assert.Empty(t, FilterByColor(products, "чёрн"))

	// Empty filter keeps everything, including colorless products.
	assert.Len(t, FilterByColor(products, ""), 3)
}

func TestCollectFilterValues(t *testing.T) {
	products := []models.Product{
		{SizesJSON: "[38,36]", Color: "шоколадный"},
		{SizesJSON: "[37,36]", Color: "бежевый"},
		{SizesJSON: "oops", Color: ""},
		{},
	}

	values := CollectFilterValues(products)
	assert.Equal(t, []int{36, 37, 38}, values.Sizes)
	assert.Equal(t, []string{"бежевый", "шоколадный"}, values.Colors)
}

func TestCollectFilterValuesEmpty(t *testing.T) {
	values := CollectFilterValues(nil)
	assert.Empty(t, values.Sizes)
	assert.Empty(t, values.Colors)
}
