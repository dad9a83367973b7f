package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"olympiades-service/internal/domain"
)

// MemoryStore keeps a thread-safe copy of all four collections in memory.
// It backs tests and the credential-free development backend.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]domain.Player
	games   map[string]domain.Game
	teams   map[string]domain.Team
	scores  map[string]domain.Score // keyed by ScoreDocID
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]domain.Player),
		games:   make(map[string]domain.Game),
		teams:   make(map[string]domain.Team),
		scores:  make(map[string]domain.Score),
	}
}

// ListPlayers returns all players sorted ascending by birth date, matching
// the roster screen ordering.
func (s *MemoryStore) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BirthDate.Before(result[j].BirthDate)
	})
	return result, nil
}

// CreatePlayer stores a player under a fresh document id.
func (s *MemoryStore) CreatePlayer(ctx context.Context, p domain.Player) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	s.players[p.ID] = p
	return p.ID, nil
}

// DeletePlayer removes a player document.
func (s *MemoryStore) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
	}
	delete(s.players, id)
	return nil
}

// SetPlayerActive toggles the eligibility flag of a player.
func (s *MemoryStore) SetPlayerActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return fmt.Errorf("player %s: %w", id, domain.ErrNotFound)
	}
	p.Active = active
	s.players[id] = p
	return nil
}

// ListGames returns all games sorted by name for stable output.
func (s *MemoryStore) ListGames(ctx context.Context) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// CreateGame stores a game under a fresh document id.
func (s *MemoryStore) CreateGame(ctx context.Context, g domain.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = uuid.NewString()
	s.games[g.ID] = g
	return g.ID, nil
}

// DeleteGame removes a game document.
func (s *MemoryStore) DeleteGame(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, domain.ErrNotFound)
	}
	delete(s.games, id)
	return nil
}

// ListTeams returns all teams in canonical name order.
func (s *MemoryStore) ListTeams(ctx context.Context) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// CreateTeam stores a team under a fresh document id.
func (s *MemoryStore) CreateTeam(ctx context.Context, t domain.Team) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	s.teams[t.ID] = t
	return t.ID, nil
}

// DeleteTeam removes a team document.
func (s *MemoryStore) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
	}
	delete(s.teams, id)
	return nil
}

// SetTeamDisplayName updates the user-editable name of a team.
func (s *MemoryStore) SetTeamDisplayName(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
	}
	t.DisplayName = name
	s.teams[id] = t
	return nil
}

// ListScores returns all stored score records. Order is not meaningful.
func (s *MemoryStore) ListScores(ctx context.Context) ([]domain.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Score, 0, len(s.scores))
	for _, sc := range s.scores {
		result = append(result, sc)
	}
	return result, nil
}

// GetScore returns the stored points for a (game, team) pair. Absence is not
// an error: it means zero points.
func (s *MemoryStore) GetScore(ctx context.Context, gameID, teamID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.scores[ScoreDocID(gameID, teamID)]
	if !ok {
		return 0, false, nil
	}
	return sc.Points, true, nil
}

// UpsertScore creates or replaces the record for the score's (game, team) pair.
func (s *MemoryStore) UpsertScore(ctx context.Context, sc domain.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores[ScoreDocID(sc.GameID, sc.TeamID)] = sc
	return nil
}

// DeleteScore removes the record for a (game, team) pair. Deleting an absent
// record is a no-op, mirroring the remote store.
func (s *MemoryStore) DeleteScore(ctx context.Context, gameID, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.scores, ScoreDocID(gameID, teamID))
	return nil
}
