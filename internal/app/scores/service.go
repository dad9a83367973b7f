package scores

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
	"olympiades-service/internal/metrics"
)

// Index builds the two-level lookup game id -> team id -> points. Each
// (game, team) pair appears at most once in well-formed input; should
// duplicates slip in, the last record wins. That fallback is
// implementation-defined, not a contract.
func Index(scores []domain.Score) domain.ScoreIndex {
	idx := make(domain.ScoreIndex)
	for _, sc := range scores {
		byTeam, ok := idx[sc.GameID]
		if !ok {
			byTeam = make(map[string]int)
			idx[sc.GameID] = byTeam
		}
		byTeam[sc.TeamID] = sc.Points
	}
	return idx
}

// Totals accumulates per-team point sums, games-played counts, and the
// maximum total across teams. Addition is commutative, so the result does
// not depend on iteration order. Teams with no recorded scores are absent
// from both maps; callers default to zero on lookup.
func Totals(idx domain.ScoreIndex) domain.ScoreTotals {
	totals := domain.ScoreTotals{
		TotalsByTeam:      make(map[string]int),
		GamesPlayedByTeam: make(map[string]int),
	}
	for _, byTeam := range idx {
		for teamID, points := range byTeam {
			totals.TotalsByTeam[teamID] += points
			totals.GamesPlayedByTeam[teamID]++
			if totals.TotalsByTeam[teamID] > totals.MaxTotal {
				totals.MaxTotal = totals.TotalsByTeam[teamID]
			}
		}
	}
	return totals
}

// Store defines the slice of the document store the scores service consumes.
type Store interface {
	ListScores(ctx context.Context) ([]domain.Score, error)
	GetScore(ctx context.Context, gameID, teamID string) (int, bool, error)
	UpsertScore(ctx context.Context, s domain.Score) error
	DeleteScore(ctx context.Context, gameID, teamID string) error
}

// Service coordinates score reads and guarded score mutations.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Recorder

	// updateMu is the single-flight guard for the whole session: at most
	// one score mutation may be in flight; extra calls are dropped.
	updateMu sync.Mutex
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{store: store, logger: logger, metrics: rec}
}

// Scores returns the stored score records indexed by game and team.
func (s *Service) Scores(ctx context.Context) (domain.ScoreIndex, error) {
	list, err := s.store.ListScores(ctx)
	if err != nil {
		return nil, err
	}
	return Index(list), nil
}

// ScoreTotals returns the per-team aggregates for the current records.
func (s *Service) ScoreTotals(ctx context.Context) (domain.ScoreTotals, error) {
	idx, err := s.Scores(ctx)
	if err != nil {
		return domain.ScoreTotals{}, err
	}
	return Totals(idx), nil
}

// SetScore clamps newPoints at zero and persists the result: a positive
// value is upserted, zero collapses to deleting the record so that "no
// record" and "zero points" stay one and the same thing. Calls arriving
// while another update is in flight are dropped with a logged no-op. The
// returned int is the points value now stored; after a failed write it is
// the previous value re-read from the store so the caller can resync.
func (s *Service) SetScore(ctx context.Context, gameID, teamID string, newPoints int) (int, error) {
	if gameID == "" || teamID == "" {
		return 0, fmt.Errorf("score key %q/%q: %w", gameID, teamID, domain.ErrInvalidArgument)
	}

	if !s.updateMu.TryLock() {
		s.metrics.RecordScoreUpdate(metrics.OutcomeDropped)
		logging.Info(s.logger, "score update dropped, another in flight",
			slog.String(logging.FieldGameID, gameID),
			slog.String(logging.FieldTeamID, teamID))
		return 0, domain.ErrUpdateInFlight
	}
	defer s.updateMu.Unlock()

	final := newPoints
	if final < 0 {
		final = 0
	}

	var err error
	if final == 0 {
		err = s.store.DeleteScore(ctx, gameID, teamID)
	} else {
		err = s.store.UpsertScore(ctx, domain.Score{GameID: gameID, TeamID: teamID, Points: final})
	}
	if err != nil {
		s.metrics.RecordScoreUpdate(metrics.OutcomeFailed)
		logging.Error(s.logger, "score update failed", err,
			slog.String(logging.FieldGameID, gameID),
			slog.String(logging.FieldTeamID, teamID),
			slog.Int(logging.FieldPoints, final))
		return s.storedPoints(ctx, gameID, teamID), err
	}

	s.metrics.RecordScoreUpdate(metrics.OutcomeApplied)
	return final, nil
}

// storedPoints re-reads the record after a failed write. Best effort: zero
// when the read fails too.
func (s *Service) storedPoints(ctx context.Context, gameID, teamID string) int {
	points, _, err := s.store.GetScore(ctx, gameID, teamID)
	if err != nil {
		return 0
	}
	return points
}
