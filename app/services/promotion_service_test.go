package services

import (
	"context"
	"testing"

	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionRepo struct {
	promotions map[uint]*models.Promotion
	nextID     uint
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: map[uint]*models.Promotion{}, nextID: 1}
}

func (f *fakePromotionRepo) GetAll(ctx context.Context) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range f.promotions {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePromotionRepo) GetActive(ctx context.Context) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range f.promotions {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePromotionRepo) GetByID(ctx context.Context, id uint) (*models.Promotion, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePromotionRepo) Create(ctx context.Context, promotion *models.Promotion) error {
	promotion.ID = f.nextID
	f.nextID++
	copied := *promotion
	f.promotions[promotion.ID] = &copied
	return nil
}

func (f *fakePromotionRepo) Save(ctx context.Context, promotion *models.Promotion) error {
	copied := *promotion
	f.promotions[promotion.ID] = &copied
	return nil
}

func (f *fakePromotionRepo) Delete(ctx context.Context, promotion *models.Promotion) error {
	delete(f.promotions, promotion.ID)
	return nil
}

func (f *fakePromotionRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range f.promotions {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func TestPromotionServiceCreate(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo())

	promotion, err := svc.Create(context.Background(), PromotionInput{
		Title:     "Скидки на зимнюю коллекцию",
		StartDate: "2025-11-01",
		EndDate:   "2025-11-30",
		IsActive:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "skidki-na-zimnyuyu-kollektsiyu", promotion.Slug)
	require.NotNil(t, promotion.StartDate)
	require.NotNil(t, promotion.EndDate)
	assert.Equal(t, "2025-11-01", promotion.StartDate.Format("2006-01-02"))
}

func TestPromotionServiceCreateWithoutDates(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo())

	promotion, err := svc.Create(context.Background(), PromotionInput{Title: "Акция", IsActive: true})
	require.NoError(t, err)
	assert.Nil(t, promotion.StartDate)
	assert.Nil(t, promotion.EndDate)
}

func TestPromotionServiceRejectsMalformedDate(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)

	_, err := svc.Create(context.Background(), PromotionInput{
		Title:     "Акция",
		StartDate: "01.11.2025",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, repo.promotions)
}

func TestPromotionServiceEndBeforeStartIsAccepted(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo())

	promotion, err := svc.Create(context.Background(), PromotionInput{
		Title:     "Акция",
		StartDate: "2025-11-30",
		EndDate:   "2025-11-01",
	})
	require.NoError(t, err)
	assert.True(t, promotion.EndDate.Before(*promotion.StartDate))
}

func TestPromotionServiceUpdateRederivesSlug(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo())

	promotion, err := svc.Create(context.Background(), PromotionInput{Title: "Акция"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), promotion.ID, PromotionInput{Title: "Новая акция"})
	require.NoError(t, err)
	assert.Equal(t, "novaya-aktsiya", updated.Slug)
}

func TestPromotionServiceDelete(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := NewPromotionService(repo)

	promotion, err := svc.Create(context.Background(), PromotionInput{Title: "Акция"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), promotion.ID))
	assert.Empty(t, repo.promotions)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), repositories.ErrNotFound)
}
