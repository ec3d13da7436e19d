package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// TierMatch is the tier chosen for a rental length.
type TierMatch struct {
	Tier        domain.PricingTier
	PricePerDay decimal.Decimal
	// Fallback is set when no tier's range contained the rental length.
	Fallback bool
	Warnings []Warning
}

// ResolvePricePerDay selects the base daily price for a rental of days days.
//
// The first tier in list order whose [MinDays, MaxDays] contains days wins;
// any further matching tier is reported as WarningOverlappingTiers. When no
// range contains days the tier with the greatest MaxDays is used (first in
// list order on ties), wherever the gap is.
func ResolvePricePerDay(tiers []domain.PricingTier, days int) (TierMatch, error) {
	if days <= 0 {
		return TierMatch{}, invalid("days", fmt.Sprint(days), "must be greater than zero")
	}
	if len(tiers) == 0 {
		return TierMatch{}, fmt.Errorf("%w: vehicle has no pricing tiers", ErrDataIntegrity)
	}

	selected := -1
	var warnings []Warning
	for i, t := range tiers {
		if days < t.MinDays || days > t.MaxDays {
			continue
		}
		if selected < 0 {
			selected = i
			continue
		}
		warnings = append(warnings, Warning{
			Kind: WarningOverlappingTiers,
			Detail: fmt.Sprintf("tiers %d-%d and %d-%d both cover %d day(s); using %d-%d",
				tiers[selected].MinDays, tiers[selected].MaxDays, t.MinDays, t.MaxDays, days,
				tiers[selected].MinDays, tiers[selected].MaxDays),
		})
	}
	if selected >= 0 {
		t := tiers[selected]
		return TierMatch{Tier: t, PricePerDay: t.PricePerDay, Warnings: warnings}, nil
	}

	t := widestTier(tiers)
	return TierMatch{Tier: t, PricePerDay: t.PricePerDay, Fallback: true}, nil
}

func widestTier(tiers []domain.PricingTier) domain.PricingTier {
	widest := 0
	for i, t := range tiers {
		if t.MaxDays > tiers[widest].MaxDays {
			widest = i
		}
	}
	return tiers[widest]
}

// ValidateTiers rejects tier lists that would make pricing ambiguous or
// leave durations to the fallback: ranges must start at one day and be
// contiguous without overlaps. It runs at the admin write boundary; the
// resolver itself tolerates whatever is stored.
func ValidateTiers(tiers []domain.PricingTier) error {
	if len(tiers) == 0 {
		return invalid("pricing_tiers", "", "at least one tier is required")
	}

	sorted := make([]domain.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinDays < sorted[j].MinDays })

	for i, t := range sorted {
		field := fmt.Sprintf("pricing_tiers[%d-%d]", t.MinDays, t.MaxDays)
		if t.MinDays < 1 {
			return invalid(field, "", "min_days must be at least 1")
		}
		if t.MaxDays < t.MinDays {
			return invalid(field, "", "max_days must not be less than min_days")
		}
		if !t.PricePerDay.IsPositive() {
			return invalid(field, t.PricePerDay.String(), "price_per_day must be greater than zero")
		}
		if i == 0 && t.MinDays != 1 {
			return invalid(field, "", "first tier must start at 1 day")
		}
		if i > 0 && t.MinDays <= sorted[i-1].MaxDays {
			return invalid(field, "", fmt.Sprintf("overlaps tier %d-%d", sorted[i-1].MinDays, sorted[i-1].MaxDays))
		}
		if i > 0 && t.MinDays > sorted[i-1].MaxDays+1 {
			return invalid(field, "", fmt.Sprintf("leaves a gap after tier %d-%d", sorted[i-1].MinDays, sorted[i-1].MaxDays))
		}
	}
	return nil
}
