package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/utils/slug"
)

// ErrInvalidDate marks a date string the form submitted that does not
// parse as YYYY-MM-DD. Unlike sizes, a malformed date rejects the whole
// submission.
var ErrInvalidDate = errors.New("invalid date")

const promotionDateLayout = "2006-01-02"

// PromotionInput mirrors ProductInput for the promotion form. Dates are
// raw strings; empty means unset.
type PromotionInput struct {
	Title        string
	Description  string
	DiscountText string
	StartDate    string
	EndDate      string
	IsActive     bool
}

type PromotionService struct {
	promotionRepo repositories.PromotionRepositoryImpl
}

func NewPromotionService(promotionRepo repositories.PromotionRepositoryImpl) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

func (s *PromotionService) Create(ctx context.Context, input PromotionInput) (*models.Promotion, error) {
	start, end, err := parseDates(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	promotion := &models.Promotion{
		Title:        input.Title,
		Slug:         slug.Make(input.Title),
		Description:  input.Description,
		DiscountText: input.DiscountText,
		StartDate:    start,
		EndDate:      end,
		IsActive:     input.IsActive,
		CreatedAt:    time.Now(),
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return promotion, nil
}

func (s *PromotionService) Update(ctx context.Context, id uint, input PromotionInput) (*models.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("promotion %d: %w", id, err)
	}

	start, end, err := parseDates(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	promotion.Title = input.Title
	promotion.Slug = slug.Make(input.Title)
	promotion.Description = input.Description
	promotion.DiscountText = input.DiscountText
	promotion.StartDate = start
	promotion.EndDate = end
	promotion.IsActive = input.IsActive

	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to save promotion: %w", err)
	}
	return promotion, nil
}

func (s *PromotionService) Delete(ctx context.Context, id uint) error {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("promotion %d: %w", id, err)
	}
	if err := s.promotionRepo.Delete(ctx, promotion); err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	return nil
}

// parseDates does not cross-validate: an end date before the start date is
// stored as submitted.
func parseDates(startRaw, endRaw string) (*time.Time, *time.Time, error) {
	start, err := parseDate(startRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("start date %q: %w", startRaw, ErrInvalidDate)
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("end date %q: %w", endRaw, ErrInvalidDate)
	}
	return start, end, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(promotionDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
