package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"olympiades-service/internal/config"
	"olympiades-service/internal/domain"
	"olympiades-service/internal/logging"
	"olympiades-service/internal/store"
	"olympiades-service/internal/testutil"
)

// seedctl populates or wipes the document store during development. It
// talks to the same backend the server does, usually the Firestore
// emulator via FIRESTORE_EMULATOR_HOST.
func main() {
	app := &cli.App{
		Name:  "seedctl",
		Usage: "populate or wipe the tournament document store",
		Commands: []*cli.Command{
			newSeedCommand(),
			newWipeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert players and games, fake by default or from a YAML roster",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "players", Value: 12, Usage: "number of fake players"},
			&cli.IntFlag{Name: "games", Value: 4, Usage: "number of fake games"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "fake data seed"},
			&cli.StringFlag{Name: "roster", Usage: "YAML roster file overriding the fakes"},
		},
		Action: func(c *cli.Context) error {
			st, closeFn, err := openStore(c.Context)
			if err != nil {
				return err
			}
			defer closeFn()

			var players []domain.Player
			var games []domain.Game
			if path := c.String("roster"); path != "" {
				players, games, err = loadRoster(path)
				if err != nil {
					return err
				}
			} else {
				players = testutil.FakePlayers(c.Uint64("seed"), c.Int("players"))
				games = testutil.FakeGames(c.Uint64("seed"), c.Int("games"))
			}

			for _, p := range players {
				p.ID = ""
				if _, err := st.CreatePlayer(c.Context, p); err != nil {
					return fmt.Errorf("create player %s: %w", p.Name, err)
				}
			}
			for _, g := range games {
				g.ID = ""
				if _, err := st.CreateGame(c.Context, g); err != nil {
					return fmt.Errorf("create game %s: %w", g.Name, err)
				}
			}

			fmt.Printf("seeded %d players and %d games\n", len(players), len(games))
			return nil
		},
	}
}

func newWipeCommand() *cli.Command {
	return &cli.Command{
		Name:  "wipe",
		Usage: "delete every player, game, team, and score record",
		Action: func(c *cli.Context) error {
			st, closeFn, err := openStore(c.Context)
			if err != nil {
				return err
			}
			defer closeFn()

			removed, err := wipe(c.Context, st)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d documents\n", removed)
			return nil
		},
	}
}

// wipe removes every document, scores first so no score ever outlives its
// team mid-wipe.
func wipe(ctx context.Context, st store.Store) (int, error) {
	removed := 0

	scores, err := st.ListScores(ctx)
	if err != nil {
		return removed, err
	}
	for _, sc := range scores {
		if err := st.DeleteScore(ctx, sc.GameID, sc.TeamID); err != nil {
			return removed, err
		}
		removed++
	}

	teams, err := st.ListTeams(ctx)
	if err != nil {
		return removed, err
	}
	for _, t := range teams {
		if err := st.DeleteTeam(ctx, t.ID); err != nil {
			return removed, err
		}
		removed++
	}

	games, err := st.ListGames(ctx)
	if err != nil {
		return removed, err
	}
	for _, g := range games {
		if err := st.DeleteGame(ctx, g.ID); err != nil {
			return removed, err
		}
		removed++
	}

	players, err := st.ListPlayers(ctx)
	if err != nil {
		return removed, err
	}
	for _, p := range players {
		if err := st.DeletePlayer(ctx, p.ID); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// openStore builds the configured backend. The memory backend is accepted
// for dry runs even though it cannot outlive the process.
func openStore(ctx context.Context) (store.Store, func() error, error) {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{Service: "seedctl"})

	if cfg.Store.Backend == config.StoreFirestore {
		fs, err := store.NewFirestoreStore(ctx, cfg.Firestore, logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs.Close, nil
	}
	return store.NewMemoryStore(), func() error { return nil }, nil
}
