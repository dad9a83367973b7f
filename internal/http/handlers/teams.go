package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"olympiades-service/internal/domain"
)

// ListTeams returns the stored teams in canonical order.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	teams, err := h.teams.Teams(r.Context())
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	writeJSON(w, http.StatusOK, teams, logger)
}

// GenerateTeams rebalances the active players into fresh teams, replacing
// the previous generation and all scores.
func (h *Handler) GenerateTeams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req struct {
		TeamCount int `json:"teamCount"`
	}
	if !decodeBody(w, r, &req, logger) {
		return
	}
	teams, err := h.teams.Generate(r.Context(), req.TeamCount)
	if err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusCreated, teams, logger)
}

// RenameTeam updates the user-editable display name of a team.
func (h *Handler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req, logger) {
		return
	}
	if err := h.teams.Rename(r.Context(), chi.URLParam(r, "id"), req.Name); err != nil {
		writeDomainError(w, r, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
