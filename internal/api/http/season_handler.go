package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type currentSeasonRequest struct {
	SeasonID *int32 `json:"season_id"`
}

func (h *Handler) AdminListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.svc.Seasons.ListSeasons(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

func (h *Handler) AdminGetSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, err := h.svc.Seasons.GetSeason(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) AdminCreateSeason(w http.ResponseWriter, r *http.Request) {
	var s domain.Season
	if err := decodeJSON(w, r, &s); err != nil {
		writeError(w, r, err)
		return
	}
	s.ID = 0
	if err := h.svc.Seasons.CreateSeason(r.Context(), &s); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) AdminUpdateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var s domain.Season
	if err := decodeJSON(w, r, &s); err != nil {
		writeError(w, r, err)
		return
	}
	s.ID = id
	if err := h.svc.Seasons.UpdateSeason(r.Context(), &s); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) AdminDeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Seasons.DeleteSeason(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminGetCurrentSeason answers 200 with null when no current season is set.
func (h *Handler) AdminGetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Seasons.GetCurrentSeason(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) AdminSetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	var req currentSeasonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Seasons.SetCurrentSeason(r.Context(), req.SeasonID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminPreviewQuote(w http.ResponseWriter, r *http.Request) {
	var req service.PreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	quote, err := h.svc.Quotes.PreviewQuote(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
