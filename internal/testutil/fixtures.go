package testutil

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"olympiades-service/internal/domain"
)

// FakePlayers returns a deterministic roster of n active players with
// alternating sexes and spread-out birth dates.
func FakePlayers(seed uint64, n int) []domain.Player {
	faker := gofakeit.New(seed)

	players := make([]domain.Player, 0, n)
	for i := 0; i < n; i++ {
		sex := domain.SexMale
		if i%2 == 1 {
			sex = domain.SexFemale
		}
		players = append(players, domain.Player{
			ID:        fmt.Sprintf("player-%d", i+1),
			Name:      faker.FirstName(),
			BirthDate: fakeBirthDate(faker),
			Sex:       sex,
			Active:    true,
		})
	}
	return players
}

// FakeGames returns n games with fake names and rules.
func FakeGames(seed uint64, n int) []domain.Game {
	faker := gofakeit.New(seed)

	games := make([]domain.Game, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, domain.Game{
			ID:    fmt.Sprintf("game-%d", i+1),
			Name:  faker.Hobby(),
			Rules: faker.Sentence(8),
		})
	}
	return games
}

func fakeBirthDate(faker *gofakeit.Faker) time.Time {
	start := time.Date(1955, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2015, time.December, 31, 0, 0, 0, 0, time.UTC)
	d := faker.DateRange(start, end)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
