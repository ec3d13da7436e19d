package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func standardTiers() []domain.PricingTier {
	return []domain.PricingTier{
		{MinDays: 1, MaxDays: 3, PricePerDay: dec("50")},
		{MinDays: 4, MaxDays: 7, PricePerDay: dec("45")},
		{MinDays: 8, MaxDays: domain.OpenEndedMaxDays, PricePerDay: dec("40")},
	}
}

func summer() domain.Season {
	return domain.Season{
		ID:         7,
		Name:       "Summer",
		Multiplier: dec("1.5"),
		Periods:    []domain.SeasonPeriod{{StartDate: "06-01", EndDate: "08-31"}},
		IsActive:   true,
	}
}

func TestQuoteService_QuoteVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("Seasonal quote", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1, PricingTiers: standardTiers()}, nil)
		seasonRepo.On("ListActive", ctx).Return([]domain.Season{summer()}, nil)
		seasonRepo.On("GetCurrent", ctx).Return(nil, nil)

		q, err := svc.QuoteVehicle(ctx, 1, "2026-07-10", "2026-07-14")
		require.NoError(t, err)
		assert.Equal(t, 5, q.Days)
		assert.True(t, dec("45").Equal(q.BasePricePerDay))
		assert.True(t, dec("67.50").Equal(q.PricePerDay))
		assert.True(t, dec("337.50").Equal(q.TotalPrice))
		assert.Equal(t, "Summer", q.SeasonName)
		require.NotNil(t, q.SeasonID)
		assert.Equal(t, int32(7), *q.SeasonID)
	})

	t.Run("Retired vehicle is not quoted", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		vehicleRepo.On("GetByID", ctx, int32(4)).Return(&domain.Vehicle{ID: 4, Status: domain.VehicleStatusRetired, PricingTiers: standardTiers()}, nil)

		_, err := svc.QuoteVehicle(ctx, 4, "2026-07-10", "2026-07-14")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		seasonRepo.AssertNotCalled(t, "ListActive", mock.Anything)
	})

	t.Run("Current season fallback", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		current := &domain.Season{ID: 3, Name: "Shoulder", Multiplier: dec("1.2"), IsActive: true,
			Periods: []domain.SeasonPeriod{{StartDate: "04-01", EndDate: "05-31"}}}
		vehicleRepo.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1, PricingTiers: standardTiers()}, nil)
		seasonRepo.On("ListActive", ctx).Return([]domain.Season{summer()}, nil)
		seasonRepo.On("GetCurrent", ctx).Return(current, nil)

		q, err := svc.QuoteVehicle(ctx, 1, "2026-01-10", "2026-01-11")
		require.NoError(t, err)
		assert.True(t, dec("60").Equal(q.PricePerDay))
		assert.True(t, dec("120").Equal(q.TotalPrice))
		assert.Equal(t, "Shoulder", q.SeasonName)
	})

	t.Run("Return before pickup", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		_, err := svc.QuoteVehicle(ctx, 1, "2026-07-14", "2026-07-10")
		assert.ErrorIs(t, err, pricing.ErrValidation)
		vehicleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle without tiers", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2}, nil)
		seasonRepo.On("ListActive", ctx).Return([]domain.Season{}, nil)
		seasonRepo.On("GetCurrent", ctx).Return(nil, nil)

		_, err := svc.QuoteVehicle(ctx, 2, "2026-07-10", "2026-07-14")
		assert.ErrorIs(t, err, pricing.ErrDataIntegrity)
	})

	t.Run("Malformed stored season", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		broken := summer()
		broken.Periods = []domain.SeasonPeriod{{StartDate: "13-40", EndDate: "08-31"}}
		vehicleRepo.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1, PricingTiers: standardTiers()}, nil)
		seasonRepo.On("ListActive", ctx).Return([]domain.Season{broken}, nil)
		seasonRepo.On("GetCurrent", ctx).Return(nil, nil)

		_, err := svc.QuoteVehicle(ctx, 1, "2026-07-10", "2026-07-14")
		assert.ErrorIs(t, err, pricing.ErrDataIntegrity)
		assert.NotErrorIs(t, err, pricing.ErrValidation)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(vehicleRepo, seasonRepo)

		vehicleRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrNotFound)

		_, err := svc.QuoteVehicle(ctx, 9, "2026-07-10", "2026-07-14")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestQuoteService_PreviewQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses supplied seasons", func(t *testing.T) {
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(new(MockVehicleRepo), seasonRepo)

		q, err := svc.PreviewQuote(ctx, service.PreviewRequest{
			Tiers:      standardTiers(),
			PickupDate: "2026-08-01",
			ReturnDate: "2026-08-10",
			Seasons:    []domain.Season{summer()},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, q.Days)
		assert.True(t, dec("60").Equal(q.PricePerDay))
		assert.True(t, dec("600").Equal(q.TotalPrice))
		seasonRepo.AssertNotCalled(t, "ListActive", mock.Anything)
	})

	t.Run("Falls back to stored seasons", func(t *testing.T) {
		seasonRepo := new(MockSeasonRepo)
		svc := service.NewQuoteService(new(MockVehicleRepo), seasonRepo)
		seasonRepo.On("ListActive", ctx).Return([]domain.Season{}, nil)
		seasonRepo.On("GetCurrent", ctx).Return(nil, nil)

		q, err := svc.PreviewQuote(ctx, service.PreviewRequest{
			Tiers:      standardTiers(),
			PickupDate: "2026-08-01",
			ReturnDate: "2026-08-01",
		})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(q.Multiplier))
		assert.True(t, dec("50").Equal(q.TotalPrice))
	})

	t.Run("Rejects overlapping tiers", func(t *testing.T) {
		svc := service.NewQuoteService(new(MockVehicleRepo), new(MockSeasonRepo))

		_, err := svc.PreviewQuote(ctx, service.PreviewRequest{
			Tiers: []domain.PricingTier{
				{MinDays: 1, MaxDays: 5, PricePerDay: dec("50")},
				{MinDays: 4, MaxDays: 10, PricePerDay: dec("45")},
			},
			PickupDate: "2026-08-01",
			ReturnDate: "2026-08-03",
			Seasons:    []domain.Season{},
		})
		assert.ErrorIs(t, err, pricing.ErrValidation)
	})
}
