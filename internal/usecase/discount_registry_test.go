package usecase_test

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDiscountRegistry_IsEligible_NotFound(t *testing.T) {
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "NOPE").
		Return(model.DiscountCode{}, repo.ErrNotFound)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "NOPE", 100)
	assert.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, usecase.ReasonNotFound, res.Reason)
}

func TestDiscountRegistry_IsEligible_Inactive(t *testing.T) {
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "OLD").
		Return(model.DiscountCode{Code: "OLD", Percentage: 10, IsActive: false}, nil)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "OLD", 100)
	assert.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, usecase.ReasonInactive, res.Reason)
}

func TestDiscountRegistry_IsEligible_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "GONE").
		Return(model.DiscountCode{Code: "GONE", Percentage: 10, IsActive: true, ExpiresAt: &past}, nil)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "GONE", 100)
	assert.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, usecase.ReasonExpired, res.Reason)
}

func TestDiscountRegistry_IsEligible_UsageLimitReached(t *testing.T) {
	limit := int64(5)
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "MAXED").
		Return(model.DiscountCode{Code: "MAXED", Percentage: 10, IsActive: true, UsageLimit: &limit, UsageCount: 5}, nil)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "MAXED", 100)
	assert.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, usecase.ReasonUsageLimitReached, res.Reason)
}

func TestDiscountRegistry_IsEligible_BelowMinimumOrder(t *testing.T) {
	min := 500.0
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "BIG").
		Return(model.DiscountCode{Code: "BIG", Percentage: 20, IsActive: true, MinOrderAmount: &min}, nil)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "BIG", 499.99)
	assert.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, usecase.ReasonBelowMinimumOrder, res.Reason)
}

// 拡張項目が全部NULLならis_activeだけで決まる
func TestDiscountRegistry_IsEligible_MinimalSchema(t *testing.T) {
	discounts := new(DiscountRepoMock)
	discounts.On("FindByCode", mock.Anything, "SAVE10").
		Return(model.DiscountCode{Code: "SAVE10", Percentage: 10, IsActive: true}, nil)

	r := usecase.NewDiscountRegistry(discounts)

	res, err := r.IsEligible(context.Background(), "SAVE10", 0)
	assert.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Empty(t, res.Reason)
}

func TestComputeDiscountAmount(t *testing.T) {
	assert.Equal(t, 99.99, usecase.ComputeDiscountAmount(10, 999.90, nil))
	assert.Equal(t, 10.0, usecase.ComputeDiscountAmount(10, 100, nil))

	cap := 50.0
	assert.Equal(t, 50.0, usecase.ComputeDiscountAmount(20, 1000, &cap))
	assert.Equal(t, 20.0, usecase.ComputeDiscountAmount(20, 100, &cap))
}
