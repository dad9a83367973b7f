package scores

import "olympiades-service/internal/domain"

// Progress maps a team's standing onto the [0, 1] fill fraction of its
// leaderboard bar: the share of the leading total, scaled by the share of
// games the team has played. Both denominators are guarded so an empty
// board renders as zero rather than NaN.
func Progress(teamTotal, maxTotal, gamesPlayed, totalGames int) float64 {
	scorePart := 0.0
	if maxTotal > 0 {
		scorePart = float64(teamTotal) / float64(maxTotal)
	}
	gamePart := 0.0
	if totalGames > 0 {
		gamePart = float64(gamesPlayed) / float64(totalGames)
	}
	return scorePart * gamePart
}

// Ranking is one display row of the leaderboard.
type Ranking struct {
	TeamID      string  `json:"teamId"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	GamesPlayed int     `json:"gamesPlayed"`
	Progress    float64 `json:"progress"`
}

// Rankings assembles leaderboard rows, one per team, in the order the
// teams are given. Teams absent from the totals score zero.
func Rankings(teams []domain.Team, totalGames int, totals domain.ScoreTotals) []Ranking {
	rows := make([]Ranking, 0, len(teams))
	for _, t := range teams {
		points := totals.TotalsByTeam[t.ID]
		played := totals.GamesPlayedByTeam[t.ID]
		rows = append(rows, Ranking{
			TeamID:      t.ID,
			Name:        t.Label(),
			Points:      points,
			GamesPlayed: played,
			Progress:    Progress(points, totals.MaxTotal, played, totalGames),
		})
	}
	return rows
}
