package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"olympiades-service/internal/domain"
)

type gameRequest struct {
	Name  string `json:"name"`
	Rules string `json:"rules"`
}

// ListGames returns the game catalog sorted by name.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	games, err := h.games.Games(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, http.StatusOK, games, logger)
}

// CreateGame registers a game with its rules text.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req gameRequest
	if !decodeBody(w, r, &req, logger) {
		return
	}
	id, err := h.games.Add(r.Context(), domain.Game{Name: req.Name, Rules: req.Rules})
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id}, logger)
}

// DeleteGame removes a game from the catalog.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.games.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
