package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/utils/slug"
	"github.com/karnaval-obuv/shop/app/utils/storage"
	"github.com/shopspring/decimal"
)

// ImageUpload is an optional photo accompanying a create or update.
type ImageUpload struct {
	File     io.Reader
	Filename string
}

// ProductInput is the typed intermediate the handlers produce from the
// loosely-typed form before anything touches the store.
type ProductInput struct {
	Name          string
	SubcategoryID uint
	Description   string
	Price         decimal.Decimal
	OldPrice      decimal.NullDecimal
	Sizes         []string
	Color         string
	IsNew         bool
	IsFeatured    bool
	IsActive      bool
	Image         *ImageUpload
}

// ProductService owns the product write path: slug derivation, old-price
// and size normalization, image hand-off, soft-delete lifecycle.
type ProductService struct {
	productRepo     repositories.ProductRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	images          storage.ImageStore
}

func NewProductService(
	productRepo repositories.ProductRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	images storage.ImageStore,
) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		subcategoryRepo: subcategoryRepo,
		images:          images,
	}
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, input.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("subcategory %d: %w", input.SubcategoryID, err)
	}

	productSlug := slug.Make(input.Name)

	product := &models.Product{
		Name:          input.Name,
		Slug:          productSlug,
		Description:   input.Description,
		Price:         input.Price,
		OldPrice:      NormalizeOldPrice(input.Price, input.OldPrice),
		SizesJSON:     encodeSizes(input.Sizes),
		Color:         input.Color,
		IsNew:         input.IsNew,
		IsFeatured:    input.IsFeatured,
		IsActive:      input.IsActive,
		CreatedAt:     time.Now(),
		SubcategoryID: &subcategory.ID,
	}

	// The image hits disk before the row commits: a crash in the gap
	// leaves an orphaned file, never a row pointing at nothing.
	if input.Image != nil {
		imageURL, err := s.images.Save(input.Image.File, subcategory.Category.Slug, subcategory.Slug, productSlug, input.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		product.ImageURL = imageURL
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update re-derives the slug from the submitted name every time; there is
// no way to hand-tweak a slug. Omitting the image leaves the stored
// reference untouched.
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}

	subcategory, err := s.subcategoryRepo.GetByID(ctx, input.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("subcategory %d: %w", input.SubcategoryID, err)
	}

	product.Name = input.Name
	product.Slug = slug.Make(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.OldPrice = NormalizeOldPrice(input.Price, input.OldPrice)
	product.SizesJSON = encodeSizes(input.Sizes)
	product.Color = input.Color
	product.IsNew = input.IsNew
	product.IsFeatured = input.IsFeatured
	product.IsActive = input.IsActive
	product.SubcategoryID = &subcategory.ID

	if input.Image != nil {
		imageURL, err := s.images.Save(input.Image.File, subcategory.Category.Slug, subcategory.Slug, product.Slug, input.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		product.ImageURL = imageURL
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

// SoftDelete hides the product from every public listing. Reversible.
func (s *ProductService) SoftDelete(ctx context.Context, id uint) error {
	return s.setActive(ctx, id, false)
}

func (s *ProductService) Restore(ctx context.Context, id uint) error {
	return s.setActive(ctx, id, true)
}

func (s *ProductService) setActive(ctx context.Context, id uint, active bool) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}
	product.IsActive = active
	if err := s.productRepo.Save(ctx, product); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// HardDelete removes the row for good and cleans up the associated image.
// A missing image file is not an error.
func (s *ProductService) HardDelete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}

	if err := s.productRepo.Delete(ctx, product); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if product.ImageURL != "" && s.images.Exists(product.ImageURL) {
		if err := s.images.Delete(product.ImageURL); err != nil {
			log.Printf("HardDelete: failed to remove image %s for product %d: %v", product.ImageURL, id, err)
		}
	}
	return nil
}

// NormalizeOldPrice drops a "was" price that does not exceed the current
// one. A contradictory discount is never stored.
func NormalizeOldPrice(price decimal.Decimal, oldPrice decimal.NullDecimal) decimal.NullDecimal {
	if !oldPrice.Valid || oldPrice.Decimal.LessThanOrEqual(decimal.Zero) || !oldPrice.Decimal.GreaterThan(price) {
		return decimal.NullDecimal{}
	}
	return oldPrice
}

// encodeSizes keeps the entries that parse as non-negative integers, in
// submission order, and silently drops the rest.
func encodeSizes(raw []string) string {
	sizes := make([]int, 0, len(raw))
	for _, entry := range raw {
		n, err := strconv.Atoi(entry)
		if err != nil || n < 0 {
			continue
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return ""
	}
	encoded, err := json.Marshal(sizes)
	if err != nil {
		return ""
	}
	return string(encoded)
}
