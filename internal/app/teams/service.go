package teams

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"olympiades-service/internal/app/players"
	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
	"olympiades-service/internal/metrics"
)

// Store defines the slice of the document store the teams service consumes.
type Store interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListScores(ctx context.Context) ([]domain.Score, error)
	CreateTeam(ctx context.Context, t domain.Team) (string, error)
	DeleteTeam(ctx context.Context, id string) error
	DeleteScore(ctx context.Context, gameID, teamID string) error
	SetTeamDisplayName(ctx context.Context, id, name string) error
}

// Service coordinates team generation and naming against a Store.
type Service struct {
	store    Store
	balancer *Balancer
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		balancer: NewBalancer(),
		logger:   logger,
		metrics:  rec,
	}
}

// Teams returns the stored teams in canonical order.
func (s *Service) Teams(ctx context.Context) ([]domain.Team, error) {
	return s.store.ListTeams(ctx)
}

// Generate rebalances the active players into teamCount fresh teams and
// wholesale-replaces the stored teams and scores with the result. It
// returns the persisted teams.
func (s *Service) Generate(ctx context.Context, teamCount int) ([]domain.Team, error) {
	start := time.Now()
	teams, err := s.generate(ctx, teamCount)
	s.metrics.RecordBalanceRun(teamCount, time.Since(start), err)
	return teams, err
}

func (s *Service) generate(ctx context.Context, teamCount int) ([]domain.Team, error) {
	// Argument validation happens before any store interaction so a bad
	// count can never partially apply.
	if teamCount < 1 || teamCount > MaxTeamCount {
		return nil, fmt.Errorf("team count %d outside [1,%d]: %w", teamCount, MaxTeamCount, domain.ErrInvalidArgument)
	}

	allPlayers, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	pool := players.Active(allPlayers)
	if len(pool) == 0 {
		return nil, domain.ErrNoActivePlayers
	}

	balanced, err := s.balancer.Balance(pool, teamCount)
	if err != nil {
		return nil, err
	}

	existingTeams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	existingScores, err := s.store.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	plan := BuildRegeneratePlan(existingTeams, existingScores, balanced)
	if err := plan.Execute(ctx, s.store); err != nil {
		// No rollback: the store keeps whatever the completed requests
		// produced. The caller reports the failure to the user.
		logging.Error(s.logger, "team regeneration left a partial state", err,
			slog.Int(logging.FieldTeamCount, teamCount))
		return nil, err
	}

	logging.Info(s.logger, "teams regenerated",
		slog.Int(logging.FieldTeamCount, teamCount),
		slog.Int(logging.FieldCount, len(pool)))

	return s.store.ListTeams(ctx)
}

// Rename updates the user-editable display name of a team. The canonical
// name never changes.
func (s *Service) Rename(ctx context.Context, teamID, displayName string) error {
	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" {
		return fmt.Errorf("display name is blank: %w", domain.ErrInvalidArgument)
	}
	return s.store.SetTeamDisplayName(ctx, teamID, trimmed)
}
