package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type reservationService struct {
	vehicleRepo     repository.VehicleRepository
	classRepo       repository.VehicleClassRepository
	seasonRepo      repository.SeasonRepository
	reservationRepo repository.ReservationRepository
	emailService    EmailService
	pricer          *quoteService
	validate        *validator.Validate
	now             func() time.Time
	log             *slog.Logger
}

func NewReservationService(
	vehicleRepo repository.VehicleRepository,
	classRepo repository.VehicleClassRepository,
	seasonRepo repository.SeasonRepository,
	reservationRepo repository.ReservationRepository,
	emailService EmailService,
) ReservationService {
	return &reservationService{
		vehicleRepo:     vehicleRepo,
		classRepo:       classRepo,
		seasonRepo:      seasonRepo,
		reservationRepo: reservationRepo,
		emailService:    emailService,
		pricer:          NewQuoteService(vehicleRepo, seasonRepo).(*quoteService),
		validate:        NewValidator(),
		now:             time.Now,
		log:             logger.WithService("reservation"),
	}
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationFailure converts the first validator field error into a
// *pricing.ValidationError so every transport maps it the same way.
func ValidationFailure(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &pricing.ValidationError{
			Field:  fe.Field(),
			Value:  fmt.Sprint(fe.Value()),
			Reason: "failed " + fe.Tag() + " check",
		}
	}
	return err
}

func (s *reservationService) CreateReservation(ctx context.Context, req ReservationRequest) (*domain.Reservation, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, ValidationFailure(err)
	}

	window, err := pricing.NewRentalWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}
	today := civil.DateOf(s.now().UTC())
	if window.Start.Before(today) {
		return nil, &pricing.ValidationError{Field: "pickup_date", Value: req.PickupDate, Reason: "must not be in the past"}
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.ErrVehicleUnavailable
	}

	extrasPrice := decimal.Zero
	if req.Extra50kmPackages > 0 {
		class, err := s.classRepo.GetByID(ctx, vehicle.ClassID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: vehicle %d references missing class %d", pricing.ErrDataIntegrity, vehicle.ID, vehicle.ClassID)
			}
			return nil, err
		}
		extrasPrice = class.Additional50kmPrice.Mul(decimal.NewFromInt32(req.Extra50kmPackages)).Round(2)
	}

	active, current, err := loadSeasons(ctx, s.seasonRepo)
	if err != nil {
		return nil, err
	}
	quote, err := s.pricer.quote(ctx, vehicle, window, active, current)
	if err != nil {
		return nil, err
	}

	locale := strings.ToLower(req.Locale)
	if locale == "" {
		locale = "en"
	}
	r := &domain.Reservation{
		VehicleID:         vehicle.ID,
		VehicleName:       vehicle.Name,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		Locale:            locale,
		PickupDate:        req.PickupDate,
		ReturnDate:        req.ReturnDate,
		PickupPlace:       req.PickupPlace,
		ReturnPlace:       req.ReturnPlace,
		Days:              int32(quote.Days),
		PricePerDay:       quote.PricePerDay,
		Extra50kmPackages: req.Extra50kmPackages,
		ExtrasPrice:       extrasPrice,
		TotalPrice:        quote.TotalPrice.Add(extrasPrice),
		Currency:          quote.Currency,
		SeasonID:          quote.SeasonID,
		SeasonName:        quote.SeasonName,
		Notes:             req.Notes,
		Status:            domain.ReservationStatusPending,
	}
	if err := s.create(ctx, r); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Reservation created", "reference", r.Reference, "vehicle_id", r.VehicleID, "total", r.TotalPrice.String())

	// The booking stands even when notification fails.
	if err := s.emailService.SendReservationConfirmation(ctx, r); err != nil {
		s.log.ErrorContext(ctx, "Failed to queue reservation confirmation", "reference", r.Reference, "error", err)
	}
	if err := s.emailService.SendReservationAdminNotice(ctx, r); err != nil {
		s.log.ErrorContext(ctx, "Failed to queue admin notice", "reference", r.Reference, "error", err)
	}
	return r, nil
}

func (s *reservationService) ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.reservationRepo.List(ctx, strings.ToUpper(status), page, pageSize)
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, r.Status, status)
	}
	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	previous := r.Status
	r.Status = status
	r.UpdatedOn = s.now()
	s.log.InfoContext(ctx, "Reservation status changed", "reference", r.Reference, "from", previous, "to", status)

	if err := s.emailService.SendReservationStatusUpdate(ctx, r); err != nil {
		s.log.ErrorContext(ctx, "Failed to queue status update", "reference", r.Reference, "error", err)
	}
	return r, nil
}

const referenceAttempts = 3

// create stores r under a fresh reference, drawing a new one if it collides.
func (s *reservationService) create(ctx context.Context, r *domain.Reservation) error {
	var err error
	for attempt := 1; attempt <= referenceAttempts; attempt++ {
		r.Reference = newReference()
		err = s.reservationRepo.Create(ctx, r)
		if !errors.Is(err, domain.ErrDuplicateReference) {
			return err
		}
		s.log.WarnContext(ctx, "Reservation reference collided", "reference", r.Reference, "attempt", attempt)
	}
	return fmt.Errorf("create reservation: %w", err)
}

// newReference derives a public booking reference, e.g. CR-1A2B3C4D5E6F.
func newReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CR-" + strings.ToUpper(id[:12])
}
