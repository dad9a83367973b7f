package domain

import "time"

// Sex mirrors the wire values used by the players collection.
type Sex string

const (
	SexMale   Sex = "H"
	SexFemale Sex = "F"
)

// Valid reports whether the value is one of the two known wire values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Player is a registered participant. Active is toggled externally and must
// be re-read before every balancing run.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	Sex       Sex       `json:"sex"`
	Active    bool      `json:"active"`
}

// TeamMember is the subset of a player embedded in a team document.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

// Member returns the team-document shape of a player.
func (p Player) Member() TeamMember {
	return TeamMember{ID: p.ID, Name: p.Name, BirthDate: p.BirthDate}
}

// Team is recreated wholesale by every balancing run; it is never merged
// with a previous generation.
type Team struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DisplayName  string       `json:"displayName"`
	Men          []TeamMember `json:"men"`
	Women        []TeamMember `json:"women"`
	AgeTotal     int          `json:"ageTotal"`
	TotalPlayers int          `json:"totalPlayers"`
	Points       int          `json:"points"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Label returns the name to display: the custom name when one has been
// set, the canonical name otherwise.
func (t Team) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// Game is read-only input to score aggregation.
type Game struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rules string `json:"rules"`
}

// Score is one recorded result for a (game, team) pair. A points value of
// zero is never stored; absence of the record means zero.
type Score struct {
	GameID string `json:"gameId"`
	TeamID string `json:"teamId"`
	Points int    `json:"points"`
}

// ScoreIndex is the two-level lookup built from the scores collection:
// game id -> team id -> points.
type ScoreIndex map[string]map[string]int

// ScoreTotals carries the per-team aggregates derived from a ScoreIndex.
// Teams with no recorded scores are absent from both maps.
type ScoreTotals struct {
	TotalsByTeam      map[string]int `json:"totalsByTeam"`
	GamesPlayedByTeam map[string]int `json:"gamesPlayedByTeam"`
	MaxTotal          int            `json:"maxTotal"`
}
