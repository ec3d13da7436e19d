package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Currency is the only currency prices are stored in.
const Currency = "EUR"

type QuoteInput struct {
	Tiers []domain.PricingTier
	// Days lists each rental day as YYYY-MM-DD; its length is the rental duration.
	Days          []string
	ActiveSeasons []domain.Season
	CurrentSeason *domain.Season
}

type QuoteResult struct {
	Days            int             `json:"days"`
	BasePricePerDay decimal.Decimal `json:"base_price_per_day"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	PricePerDay     decimal.Decimal `json:"price_per_day"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Currency        string          `json:"currency"`
	SeasonID        *int32          `json:"season_id,omitempty"`
	SeasonName      string          `json:"season_name,omitempty"`
	Warnings        []Warning       `json:"-"`
}

// Quote prices a rental. The seasonal per-day price is rounded to cents half-up
// before it is multiplied by the number of days, so the total is always an exact
// multiple of the displayed daily price.
func Quote(in QuoteInput) (QuoteResult, error) {
	if err := checkConsecutive(in.Days); err != nil {
		return QuoteResult{}, err
	}
	days := len(in.Days)
	tier, err := ResolvePricePerDay(in.Tiers, days)
	if err != nil {
		return QuoteResult{}, err
	}
	season, err := ResolveMultiplier(in.Days, in.ActiveSeasons, in.CurrentSeason)
	if err != nil {
		return QuoteResult{}, err
	}

	perDay := tier.PricePerDay.Mul(season.Multiplier).Round(2)
	result := QuoteResult{
		Days:            days,
		BasePricePerDay: tier.PricePerDay,
		Multiplier:      season.Multiplier,
		PricePerDay:     perDay,
		TotalPrice:      perDay.Mul(decimal.NewFromInt(int64(days))),
		Currency:        Currency,
		SeasonID:        season.SeasonID,
		SeasonName:      season.SeasonName,
	}
	result.Warnings = append(result.Warnings, tier.Warnings...)
	result.Warnings = append(result.Warnings, season.Warnings...)
	return result, nil
}

// checkConsecutive requires Days to be a run of consecutive calendar dates,
// so that its length is the rental duration.
func checkConsecutive(days []string) error {
	for i, s := range days {
		d, err := ParseDate(fmt.Sprintf("days[%d]", i), s)
		if err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		prev, _ := ParseDate("", days[i-1])
		if d != prev.AddDays(1) {
			return invalid(fmt.Sprintf("days[%d]", i), s, "rental days must be consecutive and in order")
		}
	}
	return nil
}

// QuoteWindow expands a pickup/return pair and quotes it.
func QuoteWindow(tiers []domain.PricingTier, pickup, dropoff string, active []domain.Season, current *domain.Season) (QuoteResult, error) {
	w, err := NewRentalWindow(pickup, dropoff)
	if err != nil {
		return QuoteResult{}, err
	}
	return Quote(QuoteInput{
		Tiers:         tiers,
		Days:          w.Days(),
		ActiveSeasons: active,
		CurrentSeason: current,
	})
}
