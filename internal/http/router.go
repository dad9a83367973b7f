package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"olympiades-service/internal/http/handlers"
	"olympiades-service/internal/http/middleware"
	"olympiades-service/internal/metrics"
)

// NewRouter registers the HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", handler.ListPlayers)
			r.Post("/", handler.CreatePlayer)
			r.Delete("/{id}", handler.DeletePlayer)
			r.Patch("/{id}/active", handler.SetPlayerActive)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", handler.ListGames)
			r.Post("/", handler.CreateGame)
			r.Delete("/{id}", handler.DeleteGame)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", handler.ListTeams)
			r.Post("/generate", handler.GenerateTeams)
			r.Patch("/{id}/name", handler.RenameTeam)
		})

		r.Route("/scores", func(r chi.Router) {
			r.Get("/", handler.ListScores)
			r.Put("/{gameID}/{teamID}", handler.SetScore)
		})

		r.Get("/rankings", handler.Rankings)
	})

	return r
}
