package http

import (
	"net/http"

	"carrental-backend/internal/domain"
)

func (h *Handler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.Vehicles.ListClasses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

// ListCatalog serves GET /vehicles?class_id&pickup&return. Each entry carries a
// live quote when both dates are given.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	classID, err := queryInt32(r, "class_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	entries, err := h.svc.Vehicles.ListCatalog(r.Context(), classID, q.Get("pickup"), q.Get("return"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetVehicle hides retired vehicles from the public site.
func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.svc.Vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if v.Status == domain.VehicleStatusRetired {
		writeError(w, r, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) QuoteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	quote, err := h.svc.Quotes.QuoteVehicle(r.Context(), id, q.Get("pickup"), q.Get("return"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) AdminListVehicles(w http.ResponseWriter, r *http.Request) {
	classID, err := queryInt32(r, "class_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter := domain.VehicleFilter{ClassID: classID, Status: domain.VehicleStatus(r.URL.Query().Get("status"))}
	vehicles, err := h.svc.Vehicles.ListVehicles(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) AdminGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.svc.Vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) AdminCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := decodeJSON(w, r, &v); err != nil {
		writeError(w, r, err)
		return
	}
	v.ID = 0
	if err := h.svc.Vehicles.CreateVehicle(r.Context(), &v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) AdminUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var v domain.Vehicle
	if err := decodeJSON(w, r, &v); err != nil {
		writeError(w, r, err)
		return
	}
	v.ID = id
	if err := h.svc.Vehicles.UpdateVehicle(r.Context(), &v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) AdminDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Vehicles.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminCreateClass(w http.ResponseWriter, r *http.Request) {
	var c domain.VehicleClass
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = 0
	if err := h.svc.Vehicles.CreateClass(r.Context(), &c); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) AdminUpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var c domain.VehicleClass
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = id
	if err := h.svc.Vehicles.UpdateClass(r.Context(), &c); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) AdminDeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Vehicles.DeleteClass(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
