package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/timeutil"
)

type playerRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Sex       string `json:"sex"`
}

type playerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Sex       string `json:"sex"`
	Active    bool   `json:"active"`
	Age       int    `json:"age"`
}

func (h *Handler) playerResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: timeutil.FormatDate(p.BirthDate),
		Sex:       string(p.Sex),
		Active:    p.Active,
		Age:       domain.DisplayAge(p.BirthDate, h.now()),
	}
}

// ListPlayers returns the roster sorted ascending by birth date.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	all, err := h.players.Players(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	out := make([]playerResponse, 0, len(all))
	for _, p := range all {
		out = append(out, h.playerResponse(p))
	}
	writeJSON(w, http.StatusOK, out, logger)
}

// CreatePlayer registers a player; new players start active.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req playerRequest
	if !decodeBody(w, r, &req, logger) {
		return
	}

	birth, err := timeutil.ParseBirthDate(req.BirthDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid birth date", logger)
		return
	}

	id, err := h.players.Add(r.Context(), domain.Player{
		Name:      req.Name,
		BirthDate: birth,
		Sex:       domain.Sex(req.Sex),
	})
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id}, logger)
}

// DeletePlayer removes a player from the roster.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.players.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetPlayerActive toggles a player's eligibility for the next balancing run.
func (h *Handler) SetPlayerActive(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req struct {
		Active bool `json:"active"`
	}
	if !decodeBody(w, r, &req, logger) {
		return
	}
	if err := h.players.SetActive(r.Context(), chi.URLParam(r, "id"), req.Active); err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
