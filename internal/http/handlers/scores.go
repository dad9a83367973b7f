package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"olympiades-service/internal/app/scores"
)

// ListScores returns the score records indexed by game then team.
func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	idx, err := h.scores.Scores(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, idx, logger)
}

// SetScore stores an absolute points value for a (game, team) pair. Zero or
// negative values clear the record. While another update is in flight the
// request is dropped and answered with 409.
func (h *Handler) SetScore(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req struct {
		Points int `json:"points"`
	}
	if !decodeBody(w, r, &req, logger) {
		return
	}

	gameID := chi.URLParam(r, "gameID")
	teamID := chi.URLParam(r, "teamID")
	stored, err := h.scores.SetScore(r.Context(), gameID, teamID, req.Points)
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"points": stored}, logger)
}

// Rankings returns the leaderboard rows in canonical team order.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	teams, err := h.teams.Teams(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	games, err := h.games.Games(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	totals, err := h.scores.ScoreTotals(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, scores.Rankings(teams, len(games), totals), logger)
}
