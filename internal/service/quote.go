package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/metrics"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type quoteService struct {
	vehicleRepo repository.VehicleRepository
	seasonRepo  repository.SeasonRepository
	log         *slog.Logger
}

func NewQuoteService(vehicleRepo repository.VehicleRepository, seasonRepo repository.SeasonRepository) QuoteService {
	return &quoteService{
		vehicleRepo: vehicleRepo,
		seasonRepo:  seasonRepo,
		log:         logger.WithService("quote"),
	}
}

func (s *quoteService) QuoteVehicle(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (*pricing.QuoteResult, error) {
	window, err := pricing.NewRentalWindow(pickupDate, returnDate)
	if err != nil {
		metrics.QuotesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		metrics.QuotesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	// Retired vehicles are hidden from the public catalog.
	if vehicle.Status == domain.VehicleStatusRetired {
		metrics.QuotesTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrNotFound
	}
	active, current, err := loadSeasons(ctx, s.seasonRepo)
	if err != nil {
		metrics.QuotesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	return s.quote(ctx, vehicle, window, active, current)
}

func (s *quoteService) PreviewQuote(ctx context.Context, req PreviewRequest) (*pricing.QuoteResult, error) {
	if err := pricing.ValidateTiers(req.Tiers); err != nil {
		return nil, err
	}
	window, err := pricing.NewRentalWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	active, current := req.Seasons, (*domain.Season)(nil)
	if req.Seasons == nil {
		if active, current, err = loadSeasons(ctx, s.seasonRepo); err != nil {
			return nil, err
		}
	} else {
		for _, season := range req.Seasons {
			if err := pricing.ValidateSeason(season); err != nil {
				return nil, err
			}
		}
	}

	result, err := pricing.Quote(pricing.QuoteInput{
		Tiers:         req.Tiers,
		Days:          window.Days(),
		ActiveSeasons: active,
		CurrentSeason: current,
	})
	if err != nil {
		return nil, err
	}
	recordWarnings(ctx, s.log, result.Warnings, "preview", true)
	return &result, nil
}

// quote prices a stored vehicle. Caller input is already validated, so any
// validation failure from here on comes from stored data.
func (s *quoteService) quote(ctx context.Context, vehicle *domain.Vehicle, window pricing.RentalWindow, active []domain.Season, current *domain.Season) (*pricing.QuoteResult, error) {
	result, err := pricing.Quote(pricing.QuoteInput{
		Tiers:         vehicle.PricingTiers,
		Days:          window.Days(),
		ActiveSeasons: active,
		CurrentSeason: current,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrValidation) {
			err = fmt.Errorf("%w: %v", pricing.ErrDataIntegrity, err)
		}
		metrics.QuotesTotal.WithLabelValues("unavailable").Inc()
		s.log.ErrorContext(ctx, "Vehicle cannot be priced", "vehicle_id", vehicle.ID, "error", err)
		return nil, err
	}
	metrics.QuotesTotal.WithLabelValues("ok").Inc()
	recordWarnings(ctx, s.log, result.Warnings, "vehicle_id", vehicle.ID)
	return &result, nil
}

func loadSeasons(ctx context.Context, repo repository.SeasonRepository) ([]domain.Season, *domain.Season, error) {
	active, err := repo.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load active seasons: %w", err)
	}
	current, err := repo.GetCurrent(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load current season: %w", err)
	}
	return active, current, nil
}

func recordWarnings(ctx context.Context, log *slog.Logger, warnings []pricing.Warning, args ...any) {
	for _, w := range warnings {
		metrics.PricingWarningsTotal.WithLabelValues(string(w.Kind)).Inc()
		log.WarnContext(ctx, "Ambiguous pricing data", append([]any{"kind", w.Kind, "detail", w.Detail}, args...)...)
	}
}
