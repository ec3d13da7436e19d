package http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"carrental-backend/internal/metrics"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

// Services are the application services the HTTP API exposes.
type Services struct {
	Vehicles     service.VehicleService
	Quotes       service.QuoteService
	Seasons      service.SeasonService
	Reservations service.ReservationService
	Blog         service.BlogService
	Auth         service.AuthService
}

type RouterOptions struct {
	Verifier           security.Verifier
	RateLimitPerMinute int
	RateLimitBurst     int
	// Ping reports backing store health for /health; nil means always healthy.
	Ping func(ctx context.Context) error
}

type Handler struct {
	svc      Services
	validate *validator.Validate
	ping     func(ctx context.Context) error
}

func NewRouter(svc Services, opts RouterOptions) *mux.Router {
	h := &Handler{svc: svc, validate: service.NewValidator(), ping: opts.Ping}

	router := mux.NewRouter()
	router.Use(Instrument)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/classes", h.ListClasses).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.ListCatalog).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}/quote", h.QuoteVehicle).Methods(http.MethodGet)
	api.HandleFunc("/blog", h.ListPublishedPosts).Methods(http.MethodGet)
	api.HandleFunc("/blog/{locale}/{slug}", h.GetPublishedPost).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)

	limiter := NewClientLimiter(opts.RateLimitPerMinute, opts.RateLimitBurst)
	api.Handle("/reservations", limiter.Middleware(http.HandlerFunc(h.CreateReservation))).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(opts.Verifier))

	admin.HandleFunc("/vehicles", h.AdminListVehicles).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", h.AdminCreateVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.AdminGetVehicle).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.AdminUpdateVehicle).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.AdminDeleteVehicle).Methods(http.MethodDelete)

	admin.HandleFunc("/classes", h.ListClasses).Methods(http.MethodGet)
	admin.HandleFunc("/classes", h.AdminCreateClass).Methods(http.MethodPost)
	admin.HandleFunc("/classes/{id:[0-9]+}", h.AdminUpdateClass).Methods(http.MethodPut)
	admin.HandleFunc("/classes/{id:[0-9]+}", h.AdminDeleteClass).Methods(http.MethodDelete)

	admin.HandleFunc("/seasons", h.AdminListSeasons).Methods(http.MethodGet)
	admin.HandleFunc("/seasons", h.AdminCreateSeason).Methods(http.MethodPost)
	admin.HandleFunc("/seasons/current", h.AdminGetCurrentSeason).Methods(http.MethodGet)
	admin.HandleFunc("/seasons/current", h.AdminSetCurrentSeason).Methods(http.MethodPut)
	admin.HandleFunc("/seasons/{id:[0-9]+}", h.AdminGetSeason).Methods(http.MethodGet)
	admin.HandleFunc("/seasons/{id:[0-9]+}", h.AdminUpdateSeason).Methods(http.MethodPut)
	admin.HandleFunc("/seasons/{id:[0-9]+}", h.AdminDeleteSeason).Methods(http.MethodDelete)

	admin.HandleFunc("/pricing/preview", h.AdminPreviewQuote).Methods(http.MethodPost)

	admin.HandleFunc("/reservations", h.AdminListReservations).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id:[0-9]+}", h.AdminGetReservation).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id:[0-9]+}/status", h.AdminUpdateReservationStatus).Methods(http.MethodPut)

	admin.HandleFunc("/blog", h.AdminListPosts).Methods(http.MethodGet)
	admin.HandleFunc("/blog", h.AdminCreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/blog/{id:[0-9]+}", h.AdminGetPost).Methods(http.MethodGet)
	admin.HandleFunc("/blog/{id:[0-9]+}", h.AdminUpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/blog/{id:[0-9]+}", h.AdminDeletePost).Methods(http.MethodDelete)

	return router
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
