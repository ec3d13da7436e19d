package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockClassRepo
type MockClassRepo struct {
	mock.Mock
}

func (m *MockClassRepo) Create(ctx context.Context, c *domain.VehicleClass) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClassRepo) GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleClass), args.Error(1)
}
func (m *MockClassRepo) Update(ctx context.Context, c *domain.VehicleClass) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClassRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClassRepo) List(ctx context.Context) ([]domain.VehicleClass, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleClass), args.Error(1)
}

// MockSeasonRepo
type MockSeasonRepo struct {
	mock.Mock
}

func (m *MockSeasonRepo) Create(ctx context.Context, s *domain.Season) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSeasonRepo) GetByID(ctx context.Context, id int32) (*domain.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) Update(ctx context.Context, s *domain.Season) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSeasonRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSeasonRepo) List(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) ListActive(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) GetCurrent(ctx context.Context) (*domain.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) SetCurrent(ctx context.Context, seasonID *int32) error {
	args := m.Called(ctx, seasonID)
	return args.Error(0)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, pickupDate, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ExpirePending(ctx context.Context, createdBefore time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, createdBefore)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockBlogRepo
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockBlogRepo) GetByID(ctx context.Context, id int32) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogRepo) GetBySlug(ctx context.Context, locale, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogRepo) Update(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockBlogRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBlogRepo) ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	args := m.Called(ctx, locale, page, pageSize)
	return args.Get(0).([]domain.BlogPost), args.Get(1).(int32), args.Error(2)
}
func (m *MockBlogRepo) List(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.BlogPost), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationConfirmation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationAdminNotice(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationStatusUpdate(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockCatalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Get(ctx context.Context, field string, dst any) (bool, error) {
	args := m.Called(ctx, field, dst)
	return args.Bool(0), args.Error(1)
}
func (m *MockCatalog) Set(ctx context.Context, field string, value any) error {
	args := m.Called(ctx, field, value)
	return args.Error(0)
}
func (m *MockCatalog) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEnqueuer
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(msg service.EmailMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}
