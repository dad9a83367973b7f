package store

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"olympiades-service/internal/config"
	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
)

// FirestoreStore persists the four collections in Cloud Firestore with the
// document shapes the legacy client established.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore connects to Firestore, or to the emulator when
// FIRESTORE_EMULATOR_HOST is set.
func NewFirestoreStore(ctx context.Context, cfg config.FirestoreConfig, logger *slog.Logger) (*FirestoreStore, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id is required: %w", domain.ErrInvalidArgument)
	}

	var client *firestore.Client
	var err error
	if cfg.EmulatorHost != "" {
		client, err = firestore.NewClient(ctx, cfg.ProjectID, option.WithoutAuthentication())
		logging.Info(logger, "connected to firestore emulator", "host", cfg.EmulatorHost)
	} else {
		client, err = firestore.NewClient(ctx, cfg.ProjectID)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	iter := s.client.Collection(CollectionPlayers).Documents(ctx)
	defer iter.Stop()

	var players []domain.Player
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list players: %w: %w", domain.ErrRemoteRead, err)
		}
		var doc playerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list players: %w: %w", domain.ErrRemoteRead, err)
		}
		p, err := decodePlayer(snap.Ref.ID, doc)
		if err != nil {
			return nil, fmt.Errorf("list players: %w: %w", domain.ErrRemoteRead, err)
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *FirestoreStore) CreatePlayer(ctx context.Context, p domain.Player) (string, error) {
	ref, _, err := s.client.Collection(CollectionPlayers).Add(ctx, encodePlayer(p))
	if err != nil {
		return "", fmt.Errorf("create player: %w: %w", domain.ErrRemoteWrite, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) DeletePlayer(ctx context.Context, id string) error {
	if _, err := s.client.Collection(CollectionPlayers).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete player %s: %w: %w", id, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) SetPlayerActive(ctx context.Context, id string, active bool) error {
	_, err := s.client.Collection(CollectionPlayers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: active},
	})
	if err != nil {
		return fmt.Errorf("set player %s active: %w: %w", id, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) ListGames(ctx context.Context) ([]domain.Game, error) {
	iter := s.client.Collection(CollectionGames).Documents(ctx)
	defer iter.Stop()

	var games []domain.Game
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list games: %w: %w", domain.ErrRemoteRead, err)
		}
		var doc gameDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list games: %w: %w", domain.ErrRemoteRead, err)
		}
		games = append(games, decodeGame(snap.Ref.ID, doc))
	}
	return games, nil
}

func (s *FirestoreStore) CreateGame(ctx context.Context, g domain.Game) (string, error) {
	ref, _, err := s.client.Collection(CollectionGames).Add(ctx, encodeGame(g))
	if err != nil {
		return "", fmt.Errorf("create game: %w: %w", domain.ErrRemoteWrite, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) DeleteGame(ctx context.Context, id string) error {
	if _, err := s.client.Collection(CollectionGames).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete game %s: %w: %w", id, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) ListTeams(ctx context.Context) ([]domain.Team, error) {
	// Ordered by canonical name so Team 1..Team N come back in display order.
	iter := s.client.Collection(CollectionTeams).OrderBy("nom", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var teams []domain.Team
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list teams: %w: %w", domain.ErrRemoteRead, err)
		}
		var doc teamDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list teams: %w: %w", domain.ErrRemoteRead, err)
		}
		t, err := decodeTeam(snap.Ref.ID, doc)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w: %w", domain.ErrRemoteRead, err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *FirestoreStore) CreateTeam(ctx context.Context, t domain.Team) (string, error) {
	ref, _, err := s.client.Collection(CollectionTeams).Add(ctx, encodeTeam(t))
	if err != nil {
		return "", fmt.Errorf("create team: %w: %w", domain.ErrRemoteWrite, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) DeleteTeam(ctx context.Context, id string) error {
	if _, err := s.client.Collection(CollectionTeams).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete team %s: %w: %w", id, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) SetTeamDisplayName(ctx context.Context, id, name string) error {
	_, err := s.client.Collection(CollectionTeams).Doc(id).Update(ctx, []firestore.Update{
		{Path: "customNom", Value: name},
	})
	if err != nil {
		return fmt.Errorf("rename team %s: %w: %w", id, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) ListScores(ctx context.Context) ([]domain.Score, error) {
	iter := s.client.Collection(CollectionScores).Documents(ctx)
	defer iter.Stop()

	var scores []domain.Score
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list scores: %w: %w", domain.ErrRemoteRead, err)
		}
		var doc scoreDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list scores: %w: %w", domain.ErrRemoteRead, err)
		}
		scores = append(scores, decodeScore(doc))
	}
	return scores, nil
}

func (s *FirestoreStore) GetScore(ctx context.Context, gameID, teamID string) (int, bool, error) {
	snap, err := s.client.Collection(CollectionScores).Doc(ScoreDocID(gameID, teamID)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get score: %w: %w", domain.ErrRemoteRead, err)
	}
	var doc scoreDoc
	if err := snap.DataTo(&doc); err != nil {
		return 0, false, fmt.Errorf("get score: %w: %w", domain.ErrRemoteRead, err)
	}
	return doc.Points, true, nil
}

// UpsertScore writes with MergeAll, matching the merge writes the legacy
// client issued for the same documents.
func (s *FirestoreStore) UpsertScore(ctx context.Context, sc domain.Score) error {
	docID := ScoreDocID(sc.GameID, sc.TeamID)
	_, err := s.client.Collection(CollectionScores).Doc(docID).Set(ctx, map[string]interface{}{
		"id_game": sc.GameID,
		"id_team": sc.TeamID,
		"points":  sc.Points,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert score %s: %w: %w", docID, domain.ErrRemoteWrite, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteScore(ctx context.Context, gameID, teamID string) error {
	docID := ScoreDocID(gameID, teamID)
	if _, err := s.client.Collection(CollectionScores).Doc(docID).Delete(ctx); err != nil {
		return fmt.Errorf("delete score %s: %w: %w", docID, domain.ErrRemoteWrite, err)
	}
	return nil
}
