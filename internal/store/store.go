package store

import (
	"context"

	"olympiades-service/internal/domain"
)

// Collection names in the document store.
const (
	CollectionPlayers = "players"
	CollectionGames   = "games"
	CollectionTeams   = "teams"
	CollectionScores  = "scores"
)

// ScoreDocID builds the composite document id used by the scores collection.
func ScoreDocID(gameID, teamID string) string {
	return gameID + "_" + teamID
}

// Store is the full document-store boundary. The app packages declare the
// narrower slices they consume; this interface exists for wiring and for
// decorators that must cover every operation.
type Store interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	CreatePlayer(ctx context.Context, p domain.Player) (string, error)
	DeletePlayer(ctx context.Context, id string) error
	SetPlayerActive(ctx context.Context, id string, active bool) error

	ListGames(ctx context.Context) ([]domain.Game, error)
	CreateGame(ctx context.Context, g domain.Game) (string, error)
	DeleteGame(ctx context.Context, id string) error

	ListTeams(ctx context.Context) ([]domain.Team, error)
	CreateTeam(ctx context.Context, t domain.Team) (string, error)
	DeleteTeam(ctx context.Context, id string) error
	SetTeamDisplayName(ctx context.Context, id, name string) error

	ListScores(ctx context.Context) ([]domain.Score, error)
	GetScore(ctx context.Context, gameID, teamID string) (int, bool, error)
	UpsertScore(ctx context.Context, s domain.Score) error
	DeleteScore(ctx context.Context, gameID, teamID string) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FirestoreStore)(nil)
	_ Store = (*Instrumented)(nil)
)
