package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type seasonService struct {
	seasonRepo repository.SeasonRepository
}

func NewSeasonService(seasonRepo repository.SeasonRepository) SeasonService {
	return &seasonService{seasonRepo: seasonRepo}
}

func (s *seasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	return s.seasonRepo.List(ctx)
}

func (s *seasonService) GetSeason(ctx context.Context, id int32) (*domain.Season, error) {
	return s.seasonRepo.GetByID(ctx, id)
}

func (s *seasonService) CreateSeason(ctx context.Context, season *domain.Season) error {
	if err := pricing.ValidateSeason(*season); err != nil {
		return err
	}
	if err := s.seasonRepo.Create(ctx, season); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Season created", "season_id", season.ID, "name", season.Name, "multiplier", season.Multiplier.String())
	return nil
}

func (s *seasonService) UpdateSeason(ctx context.Context, season *domain.Season) error {
	if err := pricing.ValidateSeason(*season); err != nil {
		return err
	}
	return s.seasonRepo.Update(ctx, season)
}

func (s *seasonService) DeleteSeason(ctx context.Context, id int32) error {
	return s.seasonRepo.Delete(ctx, id)
}

func (s *seasonService) GetCurrentSeason(ctx context.Context) (*domain.Season, error) {
	return s.seasonRepo.GetCurrent(ctx)
}

// SetCurrentSeason points the fallback season at seasonID, or clears it when nil.
func (s *seasonService) SetCurrentSeason(ctx context.Context, seasonID *int32) error {
	if seasonID != nil {
		if _, err := s.seasonRepo.GetByID(ctx, *seasonID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &pricing.ValidationError{Field: "season_id", Value: fmt.Sprint(*seasonID), Reason: "season does not exist"}
			}
			return err
		}
	}
	if err := s.seasonRepo.SetCurrent(ctx, seasonID); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Current season changed", "season_id", seasonID)
	return nil
}
