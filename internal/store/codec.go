package store

import (
	"fmt"
	"time"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/timeutil"
)

// Wire shapes of the four collections. Field names follow the documents the
// legacy client wrote and must not drift.

type playerDoc struct {
	Nom           string `firestore:"nom"`
	DateNaissance string `firestore:"dateNaissance"`
	Sexe          string `firestore:"sexe"`
	Active        bool   `firestore:"active"`
}

type gameDoc struct {
	Nom    string `firestore:"nom"`
	Regles string `firestore:"regles"`
}

type memberDoc struct {
	ID            string `firestore:"id"`
	Nom           string `firestore:"nom"`
	DateNaissance string `firestore:"dateNaissance"`
}

type teamDoc struct {
	Nom          string      `firestore:"nom"`
	CustomNom    string      `firestore:"customNom"`
	Hommes       []memberDoc `firestore:"hommes"`
	Femmes       []memberDoc `firestore:"femmes"`
	AgeTotal     int         `firestore:"ageTotal"`
	TotalPlayers int         `firestore:"totalPlayers"`
	Points       int         `firestore:"points"`
	CreatedAt    string      `firestore:"createdAt"`
}

type scoreDoc struct {
	IDGame string `firestore:"id_game"`
	IDTeam string `firestore:"id_team"`
	Points int    `firestore:"points"`
}

func encodePlayer(p domain.Player) playerDoc {
	return playerDoc{
		Nom:           p.Name,
		DateNaissance: timeutil.FormatDate(p.BirthDate),
		Sexe:          string(p.Sex),
		Active:        p.Active,
	}
}

func decodePlayer(id string, doc playerDoc) (domain.Player, error) {
	birth, err := timeutil.ParseBirthDate(doc.DateNaissance)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %s: %w", id, err)
	}
	return domain.Player{
		ID:        id,
		Name:      doc.Nom,
		BirthDate: birth,
		Sex:       domain.Sex(doc.Sexe),
		Active:    doc.Active,
	}, nil
}

func encodeGame(g domain.Game) gameDoc {
	return gameDoc{Nom: g.Name, Regles: g.Rules}
}

func decodeGame(id string, doc gameDoc) domain.Game {
	return domain.Game{ID: id, Name: doc.Nom, Rules: doc.Regles}
}

func encodeMembers(members []domain.TeamMember) []memberDoc {
	docs := make([]memberDoc, 0, len(members))
	for _, m := range members {
		docs = append(docs, memberDoc{
			ID:            m.ID,
			Nom:           m.Name,
			DateNaissance: timeutil.FormatDate(m.BirthDate),
		})
	}
	return docs
}

func decodeMembers(docs []memberDoc) ([]domain.TeamMember, error) {
	members := make([]domain.TeamMember, 0, len(docs))
	for _, d := range docs {
		birth, err := timeutil.ParseBirthDate(d.DateNaissance)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", d.ID, err)
		}
		members = append(members, domain.TeamMember{ID: d.ID, Name: d.Nom, BirthDate: birth})
	}
	return members, nil
}

func encodeTeam(t domain.Team) teamDoc {
	return teamDoc{
		Nom:          t.Name,
		CustomNom:    t.DisplayName,
		Hommes:       encodeMembers(t.Men),
		Femmes:       encodeMembers(t.Women),
		AgeTotal:     t.AgeTotal,
		TotalPlayers: t.TotalPlayers,
		Points:       t.Points,
		CreatedAt:    t.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func decodeTeam(id string, doc teamDoc) (domain.Team, error) {
	men, err := decodeMembers(doc.Hommes)
	if err != nil {
		return domain.Team{}, fmt.Errorf("team %s: %w", id, err)
	}
	women, err := decodeMembers(doc.Femmes)
	if err != nil {
		return domain.Team{}, fmt.Errorf("team %s: %w", id, err)
	}
	created, err := time.Parse(time.RFC3339, doc.CreatedAt)
	if err != nil {
		// createdAt is display metadata; a malformed value must not make the
		// whole team unreadable.
		created = time.Time{}
	}
	return domain.Team{
		ID:           id,
		Name:         doc.Nom,
		DisplayName:  doc.CustomNom,
		Men:          men,
		Women:        women,
		AgeTotal:     doc.AgeTotal,
		TotalPlayers: doc.TotalPlayers,
		Points:       doc.Points,
		CreatedAt:    created,
	}, nil
}

func encodeScore(s domain.Score) scoreDoc {
	return scoreDoc{IDGame: s.GameID, IDTeam: s.TeamID, Points: s.Points}
}

func decodeScore(doc scoreDoc) domain.Score {
	return domain.Score{GameID: doc.IDGame, TeamID: doc.IDTeam, Points: doc.Points}
}
