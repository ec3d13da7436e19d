package grpc

import (
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

func MapQuoteResultToResponse(q *pricing.QuoteResult) *QuoteResponse {
	if q == nil {
		return nil
	}
	return &QuoteResponse{
		Days:            int32(q.Days),
		BasePricePerDay: q.BasePricePerDay.StringFixed(2),
		Multiplier:      q.Multiplier.String(),
		PricePerDay:     q.PricePerDay.StringFixed(2),
		TotalPrice:      q.TotalPrice.StringFixed(2),
		Currency:        q.Currency,
		SeasonID:        q.SeasonID,
		SeasonName:      q.SeasonName,
	}
}

func MapPreviewRequestToService(req *PreviewQuoteRequest) (service.PreviewRequest, error) {
	out := service.PreviewRequest{
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
		Tiers:      make([]domain.PricingTier, 0, len(req.Tiers)),
	}
	for _, t := range req.Tiers {
		price, err := parseDecimal("pricing_tiers.price_per_day", t.PricePerDay)
		if err != nil {
			return service.PreviewRequest{}, err
		}
		out.Tiers = append(out.Tiers, domain.PricingTier{MinDays: int(t.MinDays), MaxDays: int(t.MaxDays), PricePerDay: price})
	}
	if req.Seasons == nil {
		return out, nil
	}
	out.Seasons = make([]domain.Season, 0, len(req.Seasons))
	for _, s := range req.Seasons {
		mult, err := parseDecimal("seasons.multiplier", s.Multiplier)
		if err != nil {
			return service.PreviewRequest{}, err
		}
		periods := make([]domain.SeasonPeriod, len(s.Periods))
		for i, p := range s.Periods {
			periods[i] = domain.SeasonPeriod{StartDate: p.StartDate, EndDate: p.EndDate}
		}
		out.Seasons = append(out.Seasons, domain.Season{
			ID:         s.ID,
			Name:       s.Name,
			Multiplier: mult,
			Periods:    periods,
			IsActive:   s.IsActive,
		})
	}
	return out, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &pricing.ValidationError{Field: field, Value: s, Reason: "not a decimal number"}
	}
	return d, nil
}
