package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/store"
	"olympiades-service/internal/testutil"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `
players:
  - name: Alice
    birthDate: 1999-04-02
    sex: F
  - name: Bob
    birthDate: 2000-05-03
    sex: H
games:
  - name: Pétanque
    rules: closest to the jack
`)

	players, games, err := loadRoster(path)
	if err != nil {
		t.Fatalf("loadRoster: %v", err)
	}
	if len(players) != 2 || len(games) != 1 {
		t.Fatalf("got %d players, %d games", len(players), len(games))
	}
	if players[0].Sex != domain.SexFemale || !players[0].Active {
		t.Fatalf("players[0] = %+v", players[0])
	}
	if players[1].BirthDate != testutil.MustParseDate("2000-05-03") {
		t.Fatalf("players[1] birth date = %v", players[1].BirthDate)
	}
}

func TestLoadRosterRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", `players: [`},
		{"bad birth date", "players:\n  - name: Alice\n    birthDate: soon\n    sex: F\n"},
		{"unknown sex", "players:\n  - name: Alice\n    birthDate: 1999-04-02\n    sex: W\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := loadRoster(writeRoster(t, tc.content)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, _, err := loadRoster(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestWipe(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	for _, p := range testutil.FakePlayers(1, 3) {
		p.ID = ""
		if _, err := st.CreatePlayer(ctx, p); err != nil {
			t.Fatalf("seed player: %v", err)
		}
	}
	gameID, err := st.CreateGame(ctx, domain.Game{Name: "Pétanque"})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
	teamID, err := st.CreateTeam(ctx, domain.Team{Name: "Team 1"})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	if err := st.UpsertScore(ctx, domain.Score{GameID: gameID, TeamID: teamID, Points: 5}); err != nil {
		t.Fatalf("seed score: %v", err)
	}

	removed, err := wipe(ctx, st)
	if err != nil {
		t.Fatalf("wipe: %v", err)
	}
	if removed != 6 {
		t.Fatalf("removed = %d, want 6", removed)
	}

	players, _ := st.ListPlayers(ctx)
	teams, _ := st.ListTeams(ctx)
	if len(players) != 0 || len(teams) != 0 {
		t.Fatalf("wipe left %d players, %d teams", len(players), len(teams))
	}
}
