package players

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
)

// Active filters a roster down to the players eligible for team assignment.
// Input order is preserved, though callers must not rely on it: the
// balancer reorders the pool anyway.
func Active(all []domain.Player) []domain.Player {
	active := make([]domain.Player, 0, len(all))
	for _, p := range all {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// Store defines the slice of the document store the players service consumes.
type Store interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	CreatePlayer(ctx context.Context, p domain.Player) (string, error)
	DeletePlayer(ctx context.Context, id string) error
	SetPlayerActive(ctx context.Context, id string, active bool) error
}

// Service coordinates roster operations using a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Players returns the full roster, active or not.
func (s *Service) Players(ctx context.Context) ([]domain.Player, error) {
	return s.store.ListPlayers(ctx)
}

// ActivePlayers returns the players eligible for the next balancing run.
func (s *Service) ActivePlayers(ctx context.Context) ([]domain.Player, error) {
	all, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return Active(all), nil
}

// Add registers a player. New players start active.
func (s *Service) Add(ctx context.Context, p domain.Player) (string, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return "", fmt.Errorf("player name is blank: %w", domain.ErrInvalidArgument)
	}
	if !p.Sex.Valid() {
		return "", fmt.Errorf("player sex %q: %w", p.Sex, domain.ErrInvalidArgument)
	}
	if p.BirthDate.IsZero() {
		return "", fmt.Errorf("player birth date is missing: %w", domain.ErrInvalidArgument)
	}
	p.Active = true

	id, err := s.store.CreatePlayer(ctx, p)
	if err != nil {
		return "", err
	}
	logging.Info(s.logger, "player added", slog.String(logging.FieldPlayerID, id))
	return id, nil
}

// Remove deletes a player from the registry. Teams generated while the
// player was active keep their embedded copy.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.store.DeletePlayer(ctx, id)
}

// SetActive toggles eligibility for the next balancing run.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.store.SetPlayerActive(ctx, id, active)
}
