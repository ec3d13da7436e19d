package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenEndedMaxDays marks a tier with no practical upper bound.
const OpenEndedMaxDays = 999

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

// PricingTier is a per-day base price for rentals whose length falls
// within [MinDays, MaxDays], both inclusive.
type PricingTier struct {
	MinDays     int             `json:"min_days"`
	MaxDays     int             `json:"max_days"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
}

type Vehicle struct {
	ID           int32         `json:"id"`
	ClassID      int32         `json:"class_id"`
	Class        *VehicleClass `json:"class,omitempty"` // Populated on catalog reads
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Seats        int32         `json:"seats"`
	Transmission string        `json:"transmission"`
	Fuel         string        `json:"fuel"`
	ImageURL     string        `json:"image_url"`
	PricingTiers []PricingTier `json:"pricing_tiers"`
	// Flat rate from before tiered pricing; only read by the tier backfill job.
	LegacyPricePerDay *decimal.Decimal `json:"legacy_price_per_day,omitempty"`
	Status            VehicleStatus    `json:"status"`
	CreatedOn         time.Time        `json:"created_on"`
	UpdatedOn         time.Time        `json:"updated_on"`
}

type VehicleClass struct {
	ID                  int32           `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Additional50kmPrice decimal.Decimal `json:"additional_50km_price"`
	DisplayOrder        int32           `json:"display_order"`
	CreatedOn           time.Time       `json:"created_on"`
	UpdatedOn           time.Time       `json:"updated_on"`
}

// VehicleFilter narrows catalog listings. Zero values mean "any".
type VehicleFilter struct {
	ClassID int32
	Status  VehicleStatus
}
