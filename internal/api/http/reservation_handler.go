package http

import (
	"net/http"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED COMPLETED EXPIRED"`
}

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req service.ReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Reservations.CreateReservation(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) AdminListReservations(w http.ResponseWriter, r *http.Request) {
	page, size, err := pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, total, err := h.svc.Reservations.ListReservations(r.Context(), r.URL.Query().Get("status"), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Reservation]{Items: items, Total: total, Page: page})
}

func (h *Handler) AdminGetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) AdminUpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Status = strings.ToUpper(req.Status)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, service.ValidationFailure(err))
		return
	}
	res, err := h.svc.Reservations.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
