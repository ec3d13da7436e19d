package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	vehicles     *MockVehicleService
	quotes       *MockQuoteService
	seasons      *MockSeasonService
	reservations *MockReservationService
	blog         *MockBlogService
	auth         *MockAuthService
	tokens       security.TokenManager
	router       http.Handler
}

func newFixture(t *testing.T, opts ...func(*httpapi.RouterOptions)) *fixture {
	t.Helper()
	f := &fixture{
		vehicles:     new(MockVehicleService),
		quotes:       new(MockQuoteService),
		seasons:      new(MockSeasonService),
		reservations: new(MockReservationService),
		blog:         new(MockBlogService),
		auth:         new(MockAuthService),
		tokens:       security.NewTokenManager(testSecret, time.Hour),
	}
	ro := httpapi.RouterOptions{Verifier: f.tokens, RateLimitPerMinute: 60, RateLimitBurst: 5}
	for _, o := range opts {
		o(&ro)
	}
	f.router = httpapi.NewRouter(httpapi.Services{
		Vehicles:     f.vehicles,
		Quotes:       f.quotes,
		Seasons:      f.seasons,
		Reservations: f.reservations,
		Blog:         f.blog,
		Auth:         f.auth,
	}, ro)
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if admin {
		token, _, err := f.tokens.GenerateAccessToken("ops@example.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", "", false).Code)

	down := newFixture(t, func(o *httpapi.RouterOptions) {
		o.Ping = func(context.Context) error { return errors.New("db down") }
	})
	assert.Equal(t, http.StatusServiceUnavailable, down.do(t, http.MethodGet, "/health", "", false).Code)
}

func TestQuoteVehicle(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		f := newFixture(t)
		f.quotes.On("QuoteVehicle", mock.Anything, int32(3), "2026-07-10", "2026-07-14").Return(&pricing.QuoteResult{
			Days:        5,
			PricePerDay: decimal.RequireFromString("67.50"),
			TotalPrice:  decimal.RequireFromString("337.50"),
			Currency:    "EUR",
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/vehicles/3/quote?pickup=2026-07-10&return=2026-07-14", "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(5), body["days"])
		assert.Equal(t, "337.5", body["total_price"])
		assert.Equal(t, "EUR", body["currency"])
	})

	t.Run("Validation error names the field", func(t *testing.T) {
		f := newFixture(t)
		f.quotes.On("QuoteVehicle", mock.Anything, int32(3), "2026-07-14", "2026-07-10").
			Return(nil, &pricing.ValidationError{Field: "return_date", Value: "2026-07-10", Reason: "must not be before pickup_date"})

		rec := f.do(t, http.MethodGet, "/api/v1/vehicles/3/quote?pickup=2026-07-14&return=2026-07-10", "", false)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "return_date", decodeBody(t, rec)["field"])
	})

	t.Run("Data integrity is 503", func(t *testing.T) {
		f := newFixture(t)
		f.quotes.On("QuoteVehicle", mock.Anything, int32(3), mock.Anything, mock.Anything).
			Return(nil, pricing.ErrDataIntegrity)

		rec := f.do(t, http.MethodGet, "/api/v1/vehicles/3/quote?pickup=2026-07-10&return=2026-07-14", "", false)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "pricing unavailable", decodeBody(t, rec)["error"])
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		f := newFixture(t)
		f.quotes.On("QuoteVehicle", mock.Anything, int32(404), mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		rec := f.do(t, http.MethodGet, "/api/v1/vehicles/404/quote?pickup=2026-07-10&return=2026-07-14", "", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCatalog(t *testing.T) {
	f := newFixture(t)
	f.vehicles.On("ListCatalog", mock.Anything, int32(2), "2026-07-10", "2026-07-12").Return([]service.CatalogEntry{
		{Vehicle: domain.Vehicle{ID: 1, Name: "Fiat Panda"}, PricingUnavailable: true},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/vehicles?class_id=2&pickup=2026-07-10&return=2026-07-12", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pricing_unavailable":true`)

	bad := f.do(t, http.MethodGet, "/api/v1/vehicles?class_id=abc", "", false)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestGetVehicle_RetiredIsHidden(t *testing.T) {
	f := newFixture(t)
	f.vehicles.On("GetVehicle", mock.Anything, int32(8)).Return(&domain.Vehicle{ID: 8, Status: domain.VehicleStatusRetired}, nil)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/v1/vehicles/8", "", false).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/v1/admin/vehicles/8", "", true).Code)
}

func TestCreateReservation(t *testing.T) {
	body := `{"vehicle_id":1,"customer_name":"Ana","customer_email":"ana@example.com","customer_phone":"123",` +
		`"pickup_date":"2026-07-10","return_date":"2026-07-14","pickup_place":"Airport","return_place":"Airport"}`

	t.Run("Created", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("CreateReservation", mock.Anything, mock.MatchedBy(func(r service.ReservationRequest) bool {
			return r.VehicleID == 1 && r.CustomerEmail == "ana@example.com"
		})).Return(&domain.Reservation{ID: 1, Reference: "CR-1A2B3C4D", Status: domain.ReservationStatusPending}, nil)

		rec := f.do(t, http.MethodPost, "/api/v1/reservations", body, false)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "CR-1A2B3C4D", decodeBody(t, rec)["reference"])
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/api/v1/reservations", `{"vehicle_id":1,"total_price":"1"}`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unavailable vehicle conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("CreateReservation", mock.Anything, mock.Anything).Return(nil, domain.ErrVehicleUnavailable)

		rec := f.do(t, http.MethodPost, "/api/v1/reservations", body, false)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Rate limited", func(t *testing.T) {
		f := newFixture(t, func(o *httpapi.RouterOptions) {
			o.RateLimitPerMinute = 1
			o.RateLimitBurst = 1
		})
		f.reservations.On("CreateReservation", mock.Anything, mock.Anything).
			Return(&domain.Reservation{ID: 1, Reference: "CR-00000001"}, nil)

		assert.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/api/v1/reservations", body, false).Code)
		rec := f.do(t, http.MethodPost, "/api/v1/reservations", body, false)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		f.reservations.AssertNumberOfCalls(t, "CreateReservation", 1)
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)
	f.seasons.On("ListSeasons", mock.Anything).Return([]domain.Season{}, nil)

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/api/v1/admin/seasons", "", false).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/seasons", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/v1/admin/seasons", "", true).Code)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	expires := time.Now().Add(time.Hour)
	f.auth.On("Login", mock.Anything, "ops@example.com", "pw").Return("tok", expires, nil)
	f.auth.On("Login", mock.Anything, "ops@example.com", "bad").Return("", time.Time{}, security.ErrBadCredentials)

	rec := f.do(t, http.MethodPost, "/api/v1/admin/login", `{"email":"ops@example.com","password":"pw"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", decodeBody(t, rec)["access_token"])

	rec = f.do(t, http.MethodPost, "/api/v1/admin/login", `{"email":"ops@example.com","password":"bad"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/admin/login", `{"email":"nope","password":"pw"}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decodeBody(t, rec)["field"])
}

func TestAdminUpdateReservationStatus(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("UpdateStatus", mock.Anything, int32(4), domain.ReservationStatusConfirmed).
		Return(&domain.Reservation{ID: 4, Status: domain.ReservationStatusConfirmed}, nil)
	f.reservations.On("UpdateStatus", mock.Anything, int32(5), domain.ReservationStatusCancelled).
		Return(nil, domain.ErrInvalidStatusTransition)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPut, "/api/v1/admin/reservations/4/status", `{"status":"confirmed"}`, true).Code)
	assert.Equal(t, http.StatusConflict, f.do(t, http.MethodPut, "/api/v1/admin/reservations/5/status", `{"status":"CANCELLED"}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/api/v1/admin/reservations/4/status", `{"status":"PENDING"}`, true).Code)
}

func TestAdminSetCurrentSeason(t *testing.T) {
	f := newFixture(t)
	f.seasons.On("SetCurrentSeason", mock.Anything, (*int32)(nil)).Return(nil)
	f.seasons.On("SetCurrentSeason", mock.Anything, mock.MatchedBy(func(id *int32) bool { return id != nil && *id == 7 })).Return(nil)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPut, "/api/v1/admin/seasons/current", `{"season_id":null}`, true).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPut, "/api/v1/admin/seasons/current", `{"season_id":7}`, true).Code)
}
