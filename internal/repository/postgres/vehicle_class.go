package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleClassRepository struct {
	db *sql.DB
}

func NewVehicleClassRepository(db *sql.DB) repository.VehicleClassRepository {
	return &vehicleClassRepository{db: db}
}

func (r *vehicleClassRepository) Create(ctx context.Context, c *domain.VehicleClass) error {
	now := time.Now()
	query := `INSERT INTO vehicle_classes (name, description, additional_50km_price, display_order, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Additional50kmPrice, c.DisplayOrder, now, now).Scan(&c.ID); err != nil {
		return err
	}
	c.CreatedOn, c.UpdatedOn = now, now
	return nil
}

func (r *vehicleClassRepository) GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error) {
	c := &domain.VehicleClass{}
	query := `SELECT id, name, description, additional_50km_price, display_order, created_on, updated_on FROM vehicle_classes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Additional50kmPrice, &c.DisplayOrder, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *vehicleClassRepository) Update(ctx context.Context, c *domain.VehicleClass) error {
	query := `UPDATE vehicle_classes SET name=$1, description=$2, additional_50km_price=$3, display_order=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.Additional50kmPrice, c.DisplayOrder, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *vehicleClassRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *vehicleClassRepository) List(ctx context.Context) ([]domain.VehicleClass, error) {
	query := `SELECT id, name, description, additional_50km_price, display_order, created_on, updated_on FROM vehicle_classes ORDER BY display_order, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.VehicleClass
	for rows.Next() {
		var c domain.VehicleClass
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Additional50kmPrice, &c.DisplayOrder, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
