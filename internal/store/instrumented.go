package store

import (
	"context"
	"log/slog"
	"time"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
	"olympiades-service/internal/metrics"
)

// Instrumented decorates a Store with per-operation metrics and debug logs.
type Instrumented struct {
	next    Store
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumented wraps a Store. Logger and recorder may be nil.
func NewInstrumented(next Store, logger *slog.Logger, rec *metrics.Recorder) *Instrumented {
	return &Instrumented{next: next, logger: logger, metrics: rec}
}

func (s *Instrumented) observe(collection, op string, start time.Time, err error) {
	elapsed := time.Since(start)
	s.metrics.RecordStoreOp(collection, op, elapsed, err)
	if err != nil {
		logging.Error(s.logger, "store operation failed", err,
			"collection", collection, "op", op,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	}
}

func (s *Instrumented) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	start := time.Now()
	players, err := s.next.ListPlayers(ctx)
	s.observe(CollectionPlayers, "list", start, err)
	return players, err
}

func (s *Instrumented) CreatePlayer(ctx context.Context, p domain.Player) (string, error) {
	start := time.Now()
	id, err := s.next.CreatePlayer(ctx, p)
	s.observe(CollectionPlayers, "create", start, err)
	return id, err
}

func (s *Instrumented) DeletePlayer(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeletePlayer(ctx, id)
	s.observe(CollectionPlayers, "delete", start, err)
	return err
}

func (s *Instrumented) SetPlayerActive(ctx context.Context, id string, active bool) error {
	start := time.Now()
	err := s.next.SetPlayerActive(ctx, id, active)
	s.observe(CollectionPlayers, "update", start, err)
	return err
}

func (s *Instrumented) ListGames(ctx context.Context) ([]domain.Game, error) {
	start := time.Now()
	games, err := s.next.ListGames(ctx)
	s.observe(CollectionGames, "list", start, err)
	return games, err
}

func (s *Instrumented) CreateGame(ctx context.Context, g domain.Game) (string, error) {
	start := time.Now()
	id, err := s.next.CreateGame(ctx, g)
	s.observe(CollectionGames, "create", start, err)
	return id, err
}

func (s *Instrumented) DeleteGame(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeleteGame(ctx, id)
	s.observe(CollectionGames, "delete", start, err)
	return err
}

func (s *Instrumented) ListTeams(ctx context.Context) ([]domain.Team, error) {
	start := time.Now()
	teams, err := s.next.ListTeams(ctx)
	s.observe(CollectionTeams, "list", start, err)
	return teams, err
}

func (s *Instrumented) CreateTeam(ctx context.Context, t domain.Team) (string, error) {
	start := time.Now()
	id, err := s.next.CreateTeam(ctx, t)
	s.observe(CollectionTeams, "create", start, err)
	return id, err
}

func (s *Instrumented) DeleteTeam(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.DeleteTeam(ctx, id)
	s.observe(CollectionTeams, "delete", start, err)
	return err
}

func (s *Instrumented) SetTeamDisplayName(ctx context.Context, id, name string) error {
	start := time.Now()
	err := s.next.SetTeamDisplayName(ctx, id, name)
	s.observe(CollectionTeams, "update", start, err)
	return err
}

func (s *Instrumented) ListScores(ctx context.Context) ([]domain.Score, error) {
	start := time.Now()
	scores, err := s.next.ListScores(ctx)
	s.observe(CollectionScores, "list", start, err)
	return scores, err
}

func (s *Instrumented) GetScore(ctx context.Context, gameID, teamID string) (int, bool, error) {
	start := time.Now()
	points, ok, err := s.next.GetScore(ctx, gameID, teamID)
	s.observe(CollectionScores, "get", start, err)
	return points, ok, err
}

func (s *Instrumented) UpsertScore(ctx context.Context, sc domain.Score) error {
	start := time.Now()
	err := s.next.UpsertScore(ctx, sc)
	s.observe(CollectionScores, "upsert", start, err)
	return err
}

func (s *Instrumented) DeleteScore(ctx context.Context, gameID, teamID string) error {
	start := time.Now()
	err := s.next.DeleteScore(ctx, gameID, teamID)
	s.observe(CollectionScores, "delete", start, err)
	return err
}
