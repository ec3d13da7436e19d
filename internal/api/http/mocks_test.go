package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) ListCatalog(ctx context.Context, classID int32, pickupDate, returnDate string) ([]service.CatalogEntry, error) {
	args := m.Called(ctx, classID, pickupDate, returnDate)
	return args.Get(0).([]service.CatalogEntry), args.Error(1)
}
func (m *MockVehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) ListClasses(ctx context.Context) ([]domain.VehicleClass, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleClass), args.Error(1)
}
func (m *MockVehicleService) ListVehicles(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleService) CreateClass(ctx context.Context, c *domain.VehicleClass) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockVehicleService) UpdateClass(ctx context.Context, c *domain.VehicleClass) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockVehicleService) DeleteClass(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) QuoteVehicle(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (*pricing.QuoteResult, error) {
	args := m.Called(ctx, vehicleID, pickupDate, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.QuoteResult), args.Error(1)
}
func (m *MockQuoteService) PreviewQuote(ctx context.Context, req service.PreviewRequest) (*pricing.QuoteResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.QuoteResult), args.Error(1)
}

// MockSeasonService
type MockSeasonService struct {
	mock.Mock
}

func (m *MockSeasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonService) GetSeason(ctx context.Context, id int32) (*domain.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonService) CreateSeason(ctx context.Context, s *domain.Season) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSeasonService) UpdateSeason(ctx context.Context, s *domain.Season) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSeasonService) DeleteSeason(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSeasonService) GetCurrentSeason(ctx context.Context) (*domain.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonService) SetCurrentSeason(ctx context.Context, seasonID *int32) error {
	args := m.Called(ctx, seasonID)
	return args.Error(0)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CreateReservation(ctx context.Context, req service.ReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

// MockBlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	args := m.Called(ctx, locale, page, pageSize)
	return args.Get(0).([]domain.BlogPost), args.Get(1).(int32), args.Error(2)
}
func (m *MockBlogService) GetPublished(ctx context.Context, locale, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) ListPosts(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.BlogPost), args.Get(1).(int32), args.Error(2)
}
func (m *MockBlogService) GetPost(ctx context.Context, id int32) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) CreatePost(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockBlogService) UpdatePost(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockBlogService) DeletePost(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
