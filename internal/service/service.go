package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
)

type QuoteService interface {
	QuoteVehicle(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (*pricing.QuoteResult, error)
	PreviewQuote(ctx context.Context, req PreviewRequest) (*pricing.QuoteResult, error)
}

type VehicleService interface {
	// Public catalog
	ListCatalog(ctx context.Context, classID int32, pickupDate, returnDate string) ([]CatalogEntry, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListClasses(ctx context.Context) ([]domain.VehicleClass, error)

	// Admin
	ListVehicles(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	CreateClass(ctx context.Context, class *domain.VehicleClass) error
	UpdateClass(ctx context.Context, class *domain.VehicleClass) error
	DeleteClass(ctx context.Context, id int32) error
}

type SeasonService interface {
	ListSeasons(ctx context.Context) ([]domain.Season, error)
	GetSeason(ctx context.Context, id int32) (*domain.Season, error)
	CreateSeason(ctx context.Context, season *domain.Season) error
	UpdateSeason(ctx context.Context, season *domain.Season) error
	DeleteSeason(ctx context.Context, id int32) error
	GetCurrentSeason(ctx context.Context) (*domain.Season, error)
	SetCurrentSeason(ctx context.Context, seasonID *int32) error
}

type ReservationService interface {
	CreateReservation(ctx context.Context, req ReservationRequest) (*domain.Reservation, error)
	ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error)
}

type BlogService interface {
	ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error)
	GetPublished(ctx context.Context, locale, slug string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error)
	GetPost(ctx context.Context, id int32) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, post *domain.BlogPost) error
	UpdatePost(ctx context.Context, post *domain.BlogPost) error
	DeletePost(ctx context.Context, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, time.Time, error) // access token, expiry
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, r *domain.Reservation) error
	SendReservationAdminNotice(ctx context.Context, r *domain.Reservation) error
	SendReservationStatusUpdate(ctx context.Context, r *domain.Reservation) error
	SendPickupReminder(ctx context.Context, r *domain.Reservation) error
}

// PreviewRequest prices unsaved tiers for the admin pricing editor. When
// Seasons is nil the stored active seasons and current season are used.
type PreviewRequest struct {
	Tiers      []domain.PricingTier `json:"pricing_tiers"`
	PickupDate string               `json:"pickup_date"`
	ReturnDate string               `json:"return_date"`
	Seasons    []domain.Season      `json:"seasons,omitempty"`
}

// CatalogEntry is one vehicle in a public listing. Quote is nil when no rental
// window was requested or the vehicle could not be priced.
type CatalogEntry struct {
	Vehicle            domain.Vehicle       `json:"vehicle"`
	Quote              *pricing.QuoteResult `json:"quote,omitempty"`
	PricingUnavailable bool                 `json:"pricing_unavailable,omitempty"`
}

type ReservationRequest struct {
	VehicleID         int32  `json:"vehicle_id" validate:"required,gt=0"`
	CustomerName      string `json:"customer_name" validate:"required,max=120"`
	CustomerEmail     string `json:"customer_email" validate:"required,email"`
	CustomerPhone     string `json:"customer_phone" validate:"required,max=40"`
	Locale            string `json:"locale" validate:"omitempty,alpha,len=2"`
	PickupDate        string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	ReturnDate        string `json:"return_date" validate:"required,datetime=2006-01-02"`
	PickupPlace       string `json:"pickup_place" validate:"required,max=200"`
	ReturnPlace       string `json:"return_place" validate:"required,max=200"`
	Extra50kmPackages int32  `json:"extra_50km_packages" validate:"gte=0,lte=20"`
	Notes             string `json:"notes" validate:"max=2000"`
}
