package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const seasonColumns = `id, name, multiplier, periods, is_active, created_on, updated_on`

type seasonRepository struct {
	db *sql.DB
}

func NewSeasonRepository(db *sql.DB) repository.SeasonRepository {
	return &seasonRepository{db: db}
}

func scanSeason(s scanner) (*domain.Season, error) {
	season := &domain.Season{}
	var periods []byte
	if err := s.Scan(&season.ID, &season.Name, &season.Multiplier, &periods, &season.IsActive, &season.CreatedOn, &season.UpdatedOn); err != nil {
		return nil, err
	}
	if err := fromJSONB(periods, &season.Periods); err != nil {
		return nil, fmt.Errorf("season %d periods: %w", season.ID, err)
	}
	return season, nil
}

func encodePeriods(periods []domain.SeasonPeriod) ([]byte, error) {
	if periods == nil {
		periods = []domain.SeasonPeriod{}
	}
	return toJSONB(periods)
}

func (r *seasonRepository) Create(ctx context.Context, s *domain.Season) error {
	periods, err := encodePeriods(s.Periods)
	if err != nil {
		return err
	}
	now := time.Now()
	query := `INSERT INTO seasons (name, multiplier, periods, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, s.Name, s.Multiplier, periods, s.IsActive, now, now).Scan(&s.ID); err != nil {
		return err
	}
	s.CreatedOn, s.UpdatedOn = now, now
	return nil
}

func (r *seasonRepository) GetByID(ctx context.Context, id int32) (*domain.Season, error) {
	s, err := scanSeason(r.db.QueryRowContext(ctx, `SELECT `+seasonColumns+` FROM seasons WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *seasonRepository) Update(ctx context.Context, s *domain.Season) error {
	periods, err := encodePeriods(s.Periods)
	if err != nil {
		return err
	}
	query := `UPDATE seasons SET name=$1, multiplier=$2, periods=$3, is_active=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Multiplier, periods, s.IsActive, time.Now(), s.ID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *seasonRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *seasonRepository) List(ctx context.Context) ([]domain.Season, error) {
	return r.list(ctx, `SELECT `+seasonColumns+` FROM seasons ORDER BY id`)
}

// ListActive keeps creation order; season ties resolve to the earlier season.
func (r *seasonRepository) ListActive(ctx context.Context) ([]domain.Season, error) {
	return r.list(ctx, `SELECT `+seasonColumns+` FROM seasons WHERE is_active = TRUE ORDER BY id`)
}

func (r *seasonRepository) list(ctx context.Context, query string) ([]domain.Season, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []domain.Season
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, *s)
	}
	return seasons, rows.Err()
}

func (r *seasonRepository) GetCurrent(ctx context.Context) (*domain.Season, error) {
	query := `SELECT s.id, s.name, s.multiplier, s.periods, s.is_active, s.created_on, s.updated_on
	          FROM current_season cs JOIN seasons s ON s.id = cs.season_id
	          WHERE cs.singleton = TRUE`
	s, err := scanSeason(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *seasonRepository) SetCurrent(ctx context.Context, seasonID *int32) error {
	query := `INSERT INTO current_season (singleton, season_id, updated_on) VALUES (TRUE, $1, $2)
	          ON CONFLICT (singleton) DO UPDATE SET season_id = EXCLUDED.season_id, updated_on = EXCLUDED.updated_on`
	var id sql.NullInt32
	if seasonID != nil {
		id = sql.NullInt32{Int32: *seasonID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	return err
}
