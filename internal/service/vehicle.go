package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"carrental-backend/internal/cache"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/metrics"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	classRepo   repository.VehicleClassRepository
	seasonRepo  repository.SeasonRepository
	catalog     cache.Catalog
	pricer      *quoteService
	log         *slog.Logger
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, classRepo repository.VehicleClassRepository, seasonRepo repository.SeasonRepository, catalog cache.Catalog) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		classRepo:   classRepo,
		seasonRepo:  seasonRepo,
		catalog:     catalog,
		pricer:      NewQuoteService(vehicleRepo, seasonRepo).(*quoteService),
		log:         logger.WithService("vehicle"),
	}
}

func (s *vehicleService) ListCatalog(ctx context.Context, classID int32, pickupDate, returnDate string) ([]CatalogEntry, error) {
	var window *pricing.RentalWindow
	if pickupDate != "" || returnDate != "" {
		w, err := pricing.NewRentalWindow(pickupDate, returnDate)
		if err != nil {
			return nil, err
		}
		window = &w
	}

	vehicles, err := s.availableVehicles(ctx, classID)
	if err != nil {
		return nil, err
	}

	entries := make([]CatalogEntry, len(vehicles))
	for i := range vehicles {
		entries[i].Vehicle = vehicles[i]
	}
	if window == nil || len(entries) == 0 {
		return entries, nil
	}

	active, current, err := loadSeasons(ctx, s.seasonRepo)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		q, err := s.pricer.quote(ctx, &entries[i].Vehicle, *window, active, current)
		if err != nil {
			entries[i].PricingUnavailable = true
			continue
		}
		entries[i].Quote = q
	}
	return entries, nil
}

// availableVehicles returns bookable vehicles with their class attached. The
// listing is cached; prices are not.
func (s *vehicleService) availableVehicles(ctx context.Context, classID int32) ([]domain.Vehicle, error) {
	field := fmt.Sprintf("class:%d", classID)

	var cached []domain.Vehicle
	hit, err := s.catalog.Get(ctx, field, &cached)
	switch {
	case err != nil:
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		s.log.WarnContext(ctx, "Catalog cache read failed", "field", field, "error", err)
	case hit:
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	vehicles, err := s.vehicleRepo.List(ctx, domain.VehicleFilter{ClassID: classID, Status: domain.VehicleStatusAvailable})
	if err != nil {
		return nil, err
	}
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int32]*domain.VehicleClass, len(classes))
	for i := range classes {
		byID[classes[i].ID] = &classes[i]
	}
	for i := range vehicles {
		vehicles[i].Class = byID[vehicles[i].ClassID]
	}

	if err := s.catalog.Set(ctx, field, vehicles); err != nil {
		s.log.WarnContext(ctx, "Catalog cache write failed", "field", field, "error", err)
	}
	return vehicles, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	class, err := s.classRepo.GetByID(ctx, v.ClassID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	v.Class = class
	return v, nil
}

func (s *vehicleService) ListClasses(ctx context.Context) ([]domain.VehicleClass, error) {
	return s.classRepo.List(ctx)
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx, filter)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validateVehicle(ctx, v); err != nil {
		return err
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "Vehicle created", "vehicle_id", v.ID, "slug", v.Slug)
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validateVehicle(ctx, v); err != nil {
		return err
	}
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) CreateClass(ctx context.Context, c *domain.VehicleClass) error {
	if err := validateClass(c); err != nil {
		return err
	}
	if err := s.classRepo.Create(ctx, c); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) UpdateClass(ctx context.Context, c *domain.VehicleClass) error {
	if err := validateClass(c); err != nil {
		return err
	}
	if err := s.classRepo.Update(ctx, c); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) DeleteClass(ctx context.Context, id int32) error {
	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *vehicleService) validateVehicle(ctx context.Context, v *domain.Vehicle) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return &pricing.ValidationError{Field: "name", Reason: "is required"}
	}
	if v.Slug == "" {
		v.Slug = slugify(v.Name)
	}
	switch v.Status {
	case "":
		v.Status = domain.VehicleStatusAvailable
	case domain.VehicleStatusAvailable, domain.VehicleStatusMaintenance, domain.VehicleStatusRetired:
	default:
		return &pricing.ValidationError{Field: "status", Value: string(v.Status), Reason: "unknown status"}
	}
	if err := pricing.ValidateTiers(v.PricingTiers); err != nil {
		return err
	}
	if _, err := s.classRepo.GetByID(ctx, v.ClassID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &pricing.ValidationError{Field: "class_id", Value: fmt.Sprint(v.ClassID), Reason: "class does not exist"}
		}
		return err
	}
	return nil
}

func validateClass(c *domain.VehicleClass) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return &pricing.ValidationError{Field: "name", Reason: "is required"}
	}
	if c.Additional50kmPrice.IsNegative() {
		return &pricing.ValidationError{Field: "additional_50km_price", Value: c.Additional50kmPrice.String(), Reason: "must not be negative"}
	}
	return nil
}

func (s *vehicleService) invalidate(ctx context.Context) {
	if err := s.catalog.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "Catalog cache invalidation failed", "error", err)
	}
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
