package server

import (
	"context"
	"log/slog"
	"net/http"

	"olympiades-service/internal/app/games"
	"olympiades-service/internal/app/players"
	"olympiades-service/internal/app/scores"
	"olympiades-service/internal/app/teams"
	"olympiades-service/internal/config"
	httpserver "olympiades-service/internal/http"
	"olympiades-service/internal/http/handlers"
	"olympiades-service/internal/logging"
	"olympiades-service/internal/metrics"
	"olympiades-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the wired services and the HTTP and metrics listeners.
type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          store.Store
	storeClose     func() error
	playersService *players.Service
	gamesService   *games.Service
	teamsService   *teams.Service
	scoresService  *scores.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server with the backend selected by configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	backing, closeFn, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	st := store.NewInstrumented(backing, logger, recorder)

	playerSvc := players.NewService(st, logger)
	gameSvc := games.NewService(st)
	teamSvc := teams.NewService(st, logger, recorder)
	scoreSvc := scores.NewService(st, logger, recorder)

	s := &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          st,
		storeClose:     closeFn,
		playersService: playerSvc,
		gamesService:   gameSvc,
		teamsService:   teamSvc,
		scoresService:  scoreSvc,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
	s.httpServer = buildHTTPServer(cfg, playerSvc, gameSvc, teamSvc, scoreSvc, logger, recorder)
	return s, nil
}

// buildStore selects the persistence backend. The memory backend needs no
// teardown; Firestore returns its client close.
func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.StoreFirestore:
		fs, err := store.NewFirestoreStore(ctx, cfg.Firestore, logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs.Close, nil
	default:
		return store.NewMemoryStore(), nil, nil
	}
}

func buildHTTPServer(
	cfg config.Config,
	playerSvc *players.Service,
	gameSvc *games.Service,
	teamSvc *teams.Service,
	scoreSvc *scores.Service,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(playerSvc, gameSvc, teamSvc, scoreSvc, logger, nil)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the listeners, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
