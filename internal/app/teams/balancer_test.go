package teams

import (
	"errors"
	"testing"
	"time"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/testutil"
)

// identityShuffle leaves both groups in their sorted order so assignment
// sequences are deterministic.
func identityShuffle(int, func(i, j int)) {}

func fixedBalancer(now time.Time) *Balancer {
	return &Balancer{shuffle: identityShuffle, now: func() time.Time { return now }}
}

func malePlayer(id string, birthYear int) domain.Player {
	return domain.Player{
		ID:        id,
		Name:      id,
		BirthDate: time.Date(birthYear, time.June, 15, 0, 0, 0, 0, time.UTC),
		Sex:       domain.SexMale,
		Active:    true,
	}
}

func femalePlayer(id string, birthYear int) domain.Player {
	p := malePlayer(id, birthYear)
	p.Sex = domain.SexFemale
	return p
}

func TestBalanceRejectsNonPositiveCount(t *testing.T) {
	b := fixedBalancer(testutil.MustParseDate("2024-07-01"))
	for _, count := range []int{0, -3} {
		if _, err := b.Balance([]domain.Player{malePlayer("m1", 2000)}, count); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("Balance(%d) err = %v, want ErrInvalidArgument", count, err)
		}
	}
}

func TestBalanceInterleavesSexes(t *testing.T) {
	now := testutil.MustParseDate("2024-07-01")
	b := fixedBalancer(now)

	players := []domain.Player{
		malePlayer("m2002", 2002),
		malePlayer("m2000", 2000),
		malePlayer("m2001", 2001),
		femalePlayer("f1999", 1999),
	}

	teams, err := b.Balance(players, 2)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}

	// Sorted men deal out m2000, m2001, m2002 interleaved with f1999:
	// m2000 opens team 1, f1999 balances onto team 2, the tie sends
	// m2001 back to team 1, and m2002 evens out team 2.
	first, second := teams[0], teams[1]
	if len(first.Men) != 2 || first.Men[0].ID != "m2000" || first.Men[1].ID != "m2001" {
		t.Fatalf("team 1 men = %+v", first.Men)
	}
	if len(first.Women) != 0 {
		t.Fatalf("team 1 women = %+v, want none", first.Women)
	}
	if len(second.Men) != 1 || second.Men[0].ID != "m2002" {
		t.Fatalf("team 2 men = %+v", second.Men)
	}
	if len(second.Women) != 1 || second.Women[0].ID != "f1999" {
		t.Fatalf("team 2 women = %+v", second.Women)
	}

	// Age totals use plain year subtraction against the run's year.
	if first.AgeTotal != (2024-2000)+(2024-2001) {
		t.Fatalf("team 1 age total = %d", first.AgeTotal)
	}
	if second.AgeTotal != (2024-1999)+(2024-2002) {
		t.Fatalf("team 2 age total = %d", second.AgeTotal)
	}
}

func TestBalanceTieBreaksOnLowestIndex(t *testing.T) {
	b := fixedBalancer(testutil.MustParseDate("2024-07-01"))

	players := []domain.Player{
		malePlayer("m1", 2000),
		malePlayer("m2", 2001),
		malePlayer("m3", 2002),
		malePlayer("m4", 2003),
		malePlayer("m5", 2004),
	}

	teams, err := b.Balance(players, 3)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	sizes := []int{teams[0].TotalPlayers, teams[1].TotalPlayers, teams[2].TotalPlayers}
	if sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
		t.Fatalf("team sizes = %v, want [2 2 1]", sizes)
	}
	if teams[0].Men[0].ID != "m1" || teams[1].Men[0].ID != "m2" || teams[2].Men[0].ID != "m3" {
		t.Fatalf("first round landed on %s/%s/%s", teams[0].Men[0].ID, teams[1].Men[0].ID, teams[2].Men[0].ID)
	}
	if teams[0].Men[1].ID != "m4" || teams[1].Men[1].ID != "m5" {
		t.Fatalf("second round landed on %s/%s", teams[0].Men[1].ID, teams[1].Men[1].ID)
	}
}

func TestBalanceCanonicalNamesAndTimestamps(t *testing.T) {
	now := testutil.MustParseDate("2024-07-01")
	b := fixedBalancer(now)

	teams, err := b.Balance([]domain.Player{malePlayer("m1", 2000)}, 3)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	for i, team := range teams {
		if want := CanonicalTeamName(i); team.Name != want {
			t.Fatalf("team %d name = %q, want %q", i, team.Name, want)
		}
		if !team.CreatedAt.Equal(now) {
			t.Fatalf("team %d createdAt = %v, want %v", i, team.CreatedAt, now)
		}
		if team.Men == nil || team.Women == nil {
			t.Fatalf("team %d has nil member slices", i)
		}
	}
}

func TestBalanceInvariantsUnderRandomShuffle(t *testing.T) {
	b := NewBalancer()

	var players []domain.Player
	for i := 0; i < 11; i++ {
		players = append(players, malePlayer(string(rune('a'+i)), 1980+i))
	}
	for i := 0; i < 7; i++ {
		players = append(players, femalePlayer(string(rune('A'+i)), 1985+i))
	}

	teams, err := b.Balance(players, 4)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	bySex := map[string]domain.Sex{}
	for _, p := range players {
		bySex[p.ID] = p.Sex
	}

	total := 0
	seen := map[string]bool{}
	minSize, maxSize := len(players), 0
	for _, team := range teams {
		if got := len(team.Men) + len(team.Women); got != team.TotalPlayers {
			t.Fatalf("team %s counts %d players but TotalPlayers is %d", team.Name, got, team.TotalPlayers)
		}
		for _, m := range team.Men {
			if seen[m.ID] || bySex[m.ID] != domain.SexMale {
				t.Fatalf("player %s misplaced or duplicated in %s men", m.ID, team.Name)
			}
			seen[m.ID] = true
		}
		for _, m := range team.Women {
			if seen[m.ID] || bySex[m.ID] != domain.SexFemale {
				t.Fatalf("player %s misplaced or duplicated in %s women", m.ID, team.Name)
			}
			seen[m.ID] = true
		}
		total += team.TotalPlayers
		if team.TotalPlayers < minSize {
			minSize = team.TotalPlayers
		}
		if team.TotalPlayers > maxSize {
			maxSize = team.TotalPlayers
		}
	}
	if total != len(players) || len(seen) != len(players) {
		t.Fatalf("assigned %d players (%d unique), want %d", total, len(seen), len(players))
	}
	if maxSize-minSize > 1 {
		t.Fatalf("team sizes spread %d..%d, want within one", minSize, maxSize)
	}
}

func TestBalanceEmptyPool(t *testing.T) {
	b := fixedBalancer(testutil.MustParseDate("2024-07-01"))

	teams, err := b.Balance(nil, 3)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3 empty ones", len(teams))
	}
	for _, team := range teams {
		if team.TotalPlayers != 0 || team.AgeTotal != 0 {
			t.Fatalf("team %s not empty: %+v", team.Name, team)
		}
	}
}

func TestBalanceDropsUnknownSex(t *testing.T) {
	b := fixedBalancer(testutil.MustParseDate("2024-07-01"))

	players := []domain.Player{
		malePlayer("m1", 2000),
		{ID: "x1", Name: "x1", Sex: "X", BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	teams, err := b.Balance(players, 1)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if teams[0].TotalPlayers != 1 {
		t.Fatalf("TotalPlayers = %d, want 1 with the unknown sex dropped", teams[0].TotalPlayers)
	}
}
