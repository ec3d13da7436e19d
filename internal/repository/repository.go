package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
}

type VehicleClassRepository interface {
	Create(ctx context.Context, class *domain.VehicleClass) error
	GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error)
	Update(ctx context.Context, class *domain.VehicleClass) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.VehicleClass, error)
}

type SeasonRepository interface {
	Create(ctx context.Context, season *domain.Season) error
	GetByID(ctx context.Context, id int32) (*domain.Season, error)
	Update(ctx context.Context, season *domain.Season) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Season, error)
	ListActive(ctx context.Context) ([]domain.Season, error)

	// Current season pointer. GetCurrent returns nil, nil when unset.
	GetCurrent(ctx context.Context) (*domain.Season, error)
	SetCurrent(ctx context.Context, seasonID *int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error)
	ExpirePending(ctx context.Context, createdBefore time.Time) ([]domain.Reservation, error)
}

type BlogPostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id int32) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, locale, slug string) (*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id int32) error
	ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error)
}
