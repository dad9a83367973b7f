package teams

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"olympiades-service/internal/domain"
)

// MaxTeamCount is the upper bound the team-generation screen enforces.
const MaxTeamCount = 5

// CanonicalTeamName returns the fixed name of the team at index i. The
// canonical order established here is what tie-breaking and display rely on.
func CanonicalTeamName(i int) string {
	return fmt.Sprintf("Team %d", i+1)
}

// ShuffleFunc has the shape of rand.Shuffle so tests can substitute the
// identity permutation.
type ShuffleFunc func(n int, swap func(i, j int))

// Balancer distributes active players over a requested number of teams.
type Balancer struct {
	shuffle ShuffleFunc
	now     func() time.Time
}

// NewBalancer returns a Balancer using the uniform rand.Shuffle.
func NewBalancer() *Balancer {
	return &Balancer{shuffle: rand.Shuffle, now: time.Now}
}

// Balance partitions players by sex, orders each group, shuffles, and deals
// players out round-robin to the least-loaded team. Interleaving men and
// women keeps either group from piling up in the same teams; picking the
// least-loaded team keeps sizes within one of each other.
//
// The per-sex sort by birth date is immediately discarded by the shuffle.
// That matches the historical behavior and stays as is.
func (b *Balancer) Balance(players []domain.Player, teamCount int) ([]domain.Team, error) {
	if teamCount < 1 {
		return nil, fmt.Errorf("team count %d: %w", teamCount, domain.ErrInvalidArgument)
	}

	men, women := partitionBySex(players)
	sortByBirthDate(men)
	sortByBirthDate(women)

	b.shuffle(len(men), func(i, j int) { men[i], men[j] = men[j], men[i] })
	b.shuffle(len(women), func(i, j int) { women[i], women[j] = women[j], women[i] })

	now := b.now()
	teams := make([]domain.Team, teamCount)
	for i := range teams {
		name := CanonicalTeamName(i)
		teams[i] = domain.Team{
			Name:        name,
			DisplayName: name,
			Men:         []domain.TeamMember{},
			Women:       []domain.TeamMember{},
			CreatedAt:   now,
		}
	}

	rounds := len(men)
	if len(women) > rounds {
		rounds = len(women)
	}
	for i := 0; i < rounds; i++ {
		if i < len(men) {
			assign(teams, men[i], now.Year())
		}
		if i < len(women) {
			assign(teams, women[i], now.Year())
		}
	}
	return teams, nil
}

// assign adds the player to the current least-loaded team; ties go to the
// lowest canonical index.
func assign(teams []domain.Team, p domain.Player, referenceYear int) {
	min := 0
	for i := 1; i < len(teams); i++ {
		if teams[i].TotalPlayers < teams[min].TotalPlayers {
			min = i
		}
	}

	t := &teams[min]
	if p.Sex == domain.SexFemale {
		t.Women = append(t.Women, p.Member())
	} else {
		t.Men = append(t.Men, p.Member())
	}
	t.AgeTotal += domain.BalancingAge(p.BirthDate, referenceYear)
	t.TotalPlayers++
}

func partitionBySex(players []domain.Player) (men, women []domain.Player) {
	for _, p := range players {
		switch p.Sex {
		case domain.SexMale:
			men = append(men, p)
		case domain.SexFemale:
			women = append(women, p)
		}
	}
	return men, women
}

func sortByBirthDate(players []domain.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].BirthDate.Before(players[j].BirthDate)
	})
}
