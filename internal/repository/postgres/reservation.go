package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const reservationColumns = `id, reference, vehicle_id, vehicle_name, customer_name, customer_email, customer_phone, locale,
	to_char(pickup_date, 'YYYY-MM-DD'), to_char(return_date, 'YYYY-MM-DD'), pickup_place, return_place, days,
	price_per_day, extra_50km_packages, extras_price, total_price, currency, season_id, season_name, notes, status, created_on, updated_on`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	rs := &domain.Reservation{}
	var seasonID sql.NullInt32
	err := s.Scan(&rs.ID, &rs.Reference, &rs.VehicleID, &rs.VehicleName, &rs.CustomerName, &rs.CustomerEmail, &rs.CustomerPhone, &rs.Locale,
		&rs.PickupDate, &rs.ReturnDate, &rs.PickupPlace, &rs.ReturnPlace, &rs.Days,
		&rs.PricePerDay, &rs.Extra50kmPackages, &rs.ExtrasPrice, &rs.TotalPrice, &rs.Currency, &seasonID, &rs.SeasonName, &rs.Notes, &rs.Status, &rs.CreatedOn, &rs.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if seasonID.Valid {
		id := seasonID.Int32
		rs.SeasonID = &id
	}
	return rs, nil
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	defer rows.Close()
	var out []domain.Reservation
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rs)
	}
	return out, rows.Err()
}

func (r *reservationRepository) Create(ctx context.Context, rs *domain.Reservation) error {
	var seasonID sql.NullInt32
	if rs.SeasonID != nil {
		seasonID = sql.NullInt32{Int32: *rs.SeasonID, Valid: true}
	}
	now := time.Now()
	query := `INSERT INTO reservations (reference, vehicle_id, vehicle_name, customer_name, customer_email, customer_phone, locale,
	              pickup_date, return_date, pickup_place, return_place, days, price_per_day, extra_50km_packages, extras_price,
	              total_price, currency, season_id, season_name, notes, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rs.Reference, rs.VehicleID, rs.VehicleName, rs.CustomerName, rs.CustomerEmail, rs.CustomerPhone, rs.Locale,
		rs.PickupDate, rs.ReturnDate, rs.PickupPlace, rs.ReturnPlace, rs.Days, rs.PricePerDay, rs.Extra50kmPackages, rs.ExtrasPrice,
		rs.TotalPrice, rs.Currency, seasonID, rs.SeasonName, rs.Notes, rs.Status, now, now).Scan(&rs.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateReference
	}
	if err != nil {
		return err
	}
	rs.CreatedOn, rs.UpdatedOn = now, now
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rs, err := scanReservation(r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return rs, nil
}

func (r *reservationRepository) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	rs, err := scanReservation(r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE reference = $1`, reference))
	if err != nil {
		return nil, notFound(err)
	}
	return rs, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *reservationRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	var args []interface{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, pageOffset(page, pageSize))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE pickup_date = $1 AND status = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pickupDate, status)
	if err != nil {
		return nil, err
	}
	return scanReservations(rows)
}

func (r *reservationRepository) ExpirePending(ctx context.Context, createdBefore time.Time) ([]domain.Reservation, error) {
	query := `UPDATE reservations
	          SET status = 'EXPIRED', updated_on = NOW()
	          WHERE status = 'PENDING' AND created_on < $1
	          RETURNING ` + reservationColumns
	rows, err := r.db.QueryContext(ctx, query, createdBefore)
	if err != nil {
		return nil, err
	}
	return scanReservations(rows)
}
