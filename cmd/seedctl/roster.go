package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/timeutil"
)

type rosterFile struct {
	Players []rosterPlayer `yaml:"players"`
	Games   []rosterGame   `yaml:"games"`
}

type rosterPlayer struct {
	Name      string `yaml:"name"`
	BirthDate string `yaml:"birthDate"`
	Sex       string `yaml:"sex"`
}

type rosterGame struct {
	Name  string `yaml:"name"`
	Rules string `yaml:"rules"`
}

// loadRoster reads a YAML roster and converts it to domain records. Every
// player needs a parseable birth date and a known sex.
func loadRoster(path string) ([]domain.Player, []domain.Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("parse roster: %w", err)
	}

	players := make([]domain.Player, 0, len(file.Players))
	for i, p := range file.Players {
		birth, err := timeutil.ParseBirthDate(p.BirthDate)
		if err != nil {
			return nil, nil, fmt.Errorf("roster player %d (%s): %w", i+1, p.Name, err)
		}
		sex := domain.Sex(p.Sex)
		if !sex.Valid() {
			return nil, nil, fmt.Errorf("roster player %d (%s): sex %q: %w", i+1, p.Name, p.Sex, domain.ErrInvalidArgument)
		}
		players = append(players, domain.Player{
			Name:      p.Name,
			BirthDate: birth,
			Sex:       sex,
			Active:    true,
		})
	}

	games := make([]domain.Game, 0, len(file.Games))
	for _, g := range file.Games {
		games = append(games, domain.Game{Name: g.Name, Rules: g.Rules})
	}
	return players, games, nil
}
