package teams

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"olympiades-service/internal/domain"
)

// ScoreKey identifies one score record by its composite key.
type ScoreKey struct {
	GameID string
	TeamID string
}

// RegeneratePlan is the wholesale replacement of one team generation by the
// next: every existing team and score record is deleted, then the new teams
// are created. Regenerating teams invalidates all scores on purpose.
type RegeneratePlan struct {
	TeamDeletes  []string
	ScoreDeletes []ScoreKey
	TeamCreates  []domain.Team
}

// BuildRegeneratePlan enumerates the deletes for everything currently
// stored plus the creates for the freshly balanced teams.
func BuildRegeneratePlan(existingTeams []domain.Team, existingScores []domain.Score, newTeams []domain.Team) RegeneratePlan {
	plan := RegeneratePlan{TeamCreates: newTeams}
	for _, t := range existingTeams {
		plan.TeamDeletes = append(plan.TeamDeletes, t.ID)
	}
	for _, sc := range existingScores {
		plan.ScoreDeletes = append(plan.ScoreDeletes, ScoreKey{GameID: sc.GameID, TeamID: sc.TeamID})
	}
	return plan
}

// Execute runs the delete phase fan-out and awaits all of it, then the
// create phase the same way. The two phases are not a transaction: a
// failure mid-batch leaves whatever the completed requests produced, and
// nothing is rolled back or retried. Each issued request runs to
// completion even when a sibling fails.
func (p RegeneratePlan) Execute(ctx context.Context, store Store) error {
	var deletes errgroup.Group
	for _, id := range p.TeamDeletes {
		id := id
		deletes.Go(func() error {
			return store.DeleteTeam(ctx, id)
		})
	}
	for _, key := range p.ScoreDeletes {
		key := key
		deletes.Go(func() error {
			return store.DeleteScore(ctx, key.GameID, key.TeamID)
		})
	}
	if err := deletes.Wait(); err != nil {
		return fmt.Errorf("regenerate delete phase: %w", err)
	}

	var creates errgroup.Group
	for _, team := range p.TeamCreates {
		team := team
		creates.Go(func() error {
			_, err := store.CreateTeam(ctx, team)
			return err
		})
	}
	if err := creates.Wait(); err != nil {
		return fmt.Errorf("regenerate create phase: %w", err)
	}
	return nil
}
