package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	PricingService_Quote_FullMethodName        = "/carrental.pricing.v1.PricingService/Quote"
	PricingService_PreviewQuote_FullMethodName = "/carrental.pricing.v1.PricingService/PreviewQuote"
)

type QuoteRequest struct {
	VehicleID  int32  `json:"vehicle_id"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
}

type PricingTier struct {
	MinDays     int32  `json:"min_days"`
	MaxDays     int32  `json:"max_days"`
	PricePerDay string `json:"price_per_day"`
}

type SeasonPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Season struct {
	ID         int32          `json:"id"`
	Name       string         `json:"name"`
	Multiplier string         `json:"multiplier"`
	Periods    []SeasonPeriod `json:"periods"`
	IsActive   bool           `json:"is_active"`
}

// PreviewQuoteRequest prices unsaved tiers. A nil Seasons uses the stored seasons.
type PreviewQuoteRequest struct {
	Tiers      []PricingTier `json:"pricing_tiers"`
	PickupDate string        `json:"pickup_date"`
	ReturnDate string        `json:"return_date"`
	Seasons    []Season      `json:"seasons,omitempty"`
}

// QuoteResponse carries money as decimal strings.
type QuoteResponse struct {
	Days            int32  `json:"days"`
	BasePricePerDay string `json:"base_price_per_day"`
	Multiplier      string `json:"multiplier"`
	PricePerDay     string `json:"price_per_day"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	SeasonID        *int32 `json:"season_id,omitempty"`
	SeasonName      string `json:"season_name,omitempty"`
}

type PricingServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	PreviewQuote(context.Context, *PreviewQuoteRequest) (*QuoteResponse, error)
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingService_ServiceDesc, srv)
}

func _PricingService_Quote_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(QuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).Quote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PricingService_Quote_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PricingServiceServer).Quote(ctx, req.(*QuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_PreviewQuote_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PreviewQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).PreviewQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PricingService_PreviewQuote_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PricingServiceServer).PreviewQuote(ctx, req.(*PreviewQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var PricingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "carrental.pricing.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: _PricingService_Quote_Handler},
		{MethodName: "PreviewQuote", Handler: _PricingService_PreviewQuote_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carrental/pricing/v1/pricing",
}

// PricingServiceClient calls the pricing service with the JSON codec.
type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func (c *PricingServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	out := new(QuoteResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PricingService_Quote_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PricingServiceClient) PreviewQuote(ctx context.Context, in *PreviewQuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	out := new(QuoteResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, PricingService_PreviewQuote_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
