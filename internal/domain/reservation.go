package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusExpired},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

// CanTransitionTo reports whether an admin may move a reservation from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID            int32  `json:"id"`
	Reference     string `json:"reference"`
	VehicleID     int32  `json:"vehicle_id"`
	VehicleName   string `json:"vehicle_name"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Locale        string `json:"locale"`
	PickupDate    string `json:"pickup_date"`
	ReturnDate    string `json:"return_date"`
	PickupPlace   string `json:"pickup_place"`
	ReturnPlace   string `json:"return_place"`
	Days          int32  `json:"days"`
	// Price snapshot taken when the reservation was submitted.
	PricePerDay       decimal.Decimal   `json:"price_per_day"`
	Extra50kmPackages int32             `json:"extra_50km_packages"`
	ExtrasPrice       decimal.Decimal   `json:"extras_price"`
	TotalPrice        decimal.Decimal   `json:"total_price"`
	Currency          string            `json:"currency"`
	SeasonID          *int32            `json:"season_id,omitempty"`
	SeasonName        string            `json:"season_name"`
	Notes             string            `json:"notes"`
	Status            ReservationStatus `json:"status"`
	CreatedOn         time.Time         `json:"created_on"`
	UpdatedOn         time.Time         `json:"updated_on"`
}
