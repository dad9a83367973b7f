package games

import (
	"context"
	"fmt"
	"strings"

	"olympiades-service/internal/domain"
)

// Store defines the slice of the document store the games service consumes.
type Store interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	CreateGame(ctx context.Context, g domain.Game) (string, error)
	DeleteGame(ctx context.Context, id string) error
}

// Service coordinates game catalog operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current game catalog.
func (s *Service) Games(ctx context.Context) ([]domain.Game, error) {
	return s.store.ListGames(ctx)
}

// Add registers a game with its rules text.
func (s *Service) Add(ctx context.Context, g domain.Game) (string, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return "", fmt.Errorf("game name is blank: %w", domain.ErrInvalidArgument)
	}
	return s.store.CreateGame(ctx, g)
}

// Remove deletes a game. Its score records become unreachable but are only
// swept by the next team regeneration.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.store.DeleteGame(ctx, id)
}
