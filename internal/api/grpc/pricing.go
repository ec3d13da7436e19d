package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

type PricingHandler struct {
	quoteSvc service.QuoteService
}

func NewPricingHandler(quoteSvc service.QuoteService) *PricingHandler {
	return &PricingHandler{quoteSvc: quoteSvc}
}

func (h *PricingHandler) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	q, err := h.quoteSvc.QuoteVehicle(ctx, req.VehicleID, req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapQuoteResultToResponse(q), nil
}

func (h *PricingHandler) PreviewQuote(ctx context.Context, req *PreviewQuoteRequest) (*QuoteResponse, error) {
	admin, err := GetAdminEmailFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in, err := MapPreviewRequestToService(req)
	if err != nil {
		return nil, toStatus(err)
	}
	q, err := h.quoteSvc.PreviewQuote(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	logger.Debug("Pricing preview", "admin", admin, "days", q.Days)
	return MapQuoteResultToResponse(q), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, pricing.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, pricing.ErrDataIntegrity):
		return status.Error(codes.FailedPrecondition, "pricing unavailable")
	default:
		logger.Error("Pricing RPC failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
