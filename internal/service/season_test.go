package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

func TestSeasonService_CreateSeason(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSeasonRepo)
	svc := service.NewSeasonService(repo)

	bad := summer()
	bad.Multiplier = dec("0")
	assert.ErrorIs(t, svc.CreateSeason(ctx, &bad), pricing.ErrValidation)

	good := summer()
	repo.On("Create", ctx, &good).Return(nil)
	require.NoError(t, svc.CreateSeason(ctx, &good))
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSeasonService_SetCurrentSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing season", func(t *testing.T) {
		repo := new(MockSeasonRepo)
		svc := service.NewSeasonService(repo)
		id := int32(7)
		s := summer()
		repo.On("GetByID", ctx, id).Return(&s, nil)
		repo.On("SetCurrent", ctx, &id).Return(nil)

		require.NoError(t, svc.SetCurrentSeason(ctx, &id))
	})

	t.Run("Clear", func(t *testing.T) {
		repo := new(MockSeasonRepo)
		svc := service.NewSeasonService(repo)
		repo.On("SetCurrent", ctx, (*int32)(nil)).Return(nil)

		require.NoError(t, svc.SetCurrentSeason(ctx, nil))
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown season", func(t *testing.T) {
		repo := new(MockSeasonRepo)
		svc := service.NewSeasonService(repo)
		id := int32(99)
		repo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

		err := svc.SetCurrentSeason(ctx, &id)
		assert.ErrorIs(t, err, pricing.ErrValidation)
	})
}
