package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"olympiades-service/internal/app/games"
	"olympiades-service/internal/app/players"
	"olympiades-service/internal/app/scores"
	"olympiades-service/internal/app/teams"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	players *players.Service
	games   *games.Service
	teams   *teams.Service
	scores  *scores.Service
	logger  *slog.Logger
	now     nowFunc
	ready   func() bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(
	playerSvc *players.Service,
	gameSvc *games.Service,
	teamSvc *teams.Service,
	scoreSvc *scores.Service,
	logger *slog.Logger,
	ready func() bool,
) *Handler {
	return &Handler{
		players: playerSvc,
		games:   gameSvc,
		teams:   teamSvc,
		scores:  scoreSvc,
		logger:  logger,
		now:     time.Now,
		ready:   ready,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
