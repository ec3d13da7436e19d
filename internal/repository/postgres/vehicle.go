package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const vehicleColumns = `id, class_id, name, slug, brand, model, seats, transmission, fuel, image_url, pricing_tiers, legacy_price_per_day, status, created_on, updated_on`

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func scanVehicle(s scanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var tiers []byte
	var legacy decimal.NullDecimal
	err := s.Scan(&v.ID, &v.ClassID, &v.Name, &v.Slug, &v.Brand, &v.Model, &v.Seats, &v.Transmission, &v.Fuel, &v.ImageURL, &tiers, &legacy, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(tiers, &v.PricingTiers); err != nil {
		return nil, fmt.Errorf("vehicle %d pricing_tiers: %w", v.ID, err)
	}
	if legacy.Valid {
		v.LegacyPricePerDay = &legacy.Decimal
	}
	return v, nil
}

func encodeTiers(tiers []domain.PricingTier) ([]byte, error) {
	if tiers == nil {
		tiers = []domain.PricingTier{}
	}
	return toJSONB(tiers)
}

func legacyArg(v *domain.Vehicle) decimal.NullDecimal {
	if v.LegacyPricePerDay == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*v.LegacyPricePerDay)
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	tiers, err := encodeTiers(v.PricingTiers)
	if err != nil {
		return err
	}
	now := time.Now()
	query := `INSERT INTO vehicles (class_id, name, slug, brand, model, seats, transmission, fuel, image_url, pricing_tiers, legacy_price_per_day, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	err = r.db.QueryRowContext(ctx, query, v.ClassID, v.Name, v.Slug, v.Brand, v.Model, v.Seats, v.Transmission, v.Fuel, v.ImageURL, tiers, legacyArg(v), v.Status, now, now).Scan(&v.ID)
	if err != nil {
		return err
	}
	v.CreatedOn, v.UpdatedOn = now, now
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	tiers, err := encodeTiers(v.PricingTiers)
	if err != nil {
		return err
	}
	query := `UPDATE vehicles SET class_id=$1, name=$2, slug=$3, brand=$4, model=$5, seats=$6, transmission=$7, fuel=$8, image_url=$9, pricing_tiers=$10, legacy_price_per_day=$11, status=$12, updated_on=$13 WHERE id=$14`
	res, err := r.db.ExecContext(ctx, query, v.ClassID, v.Name, v.Slug, v.Brand, v.Model, v.Seats, v.Transmission, v.Fuel, v.ImageURL, tiers, legacyArg(v), v.Status, time.Now(), v.ID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *vehicleRepository) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	var args []interface{}
	if filter.ClassID != 0 {
		args = append(args, filter.ClassID)
		query += fmt.Sprintf(" AND class_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY class_id, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
