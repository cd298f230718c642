package arena

import "math"

// Stats is the match score from A's point of view.
type Stats struct {
	Wins, Losses, Draws int
	WinningFraction     float64
	EloDifference       float64
	LOS                 float64
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

// https://www.chessprogramming.org/Match_Statistics
func ComputeStats(wins, losses, draws int) Stats {
	var stats = Stats{Wins: wins, Losses: losses, Draws: draws, LOS: 0.5}
	var games = wins + losses + draws
	if games == 0 {
		return stats
	}
	stats.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stats.EloDifference = -math.Log(1/stats.WinningFraction-1) * 400 / math.Ln10
	if wins+losses > 0 {
		stats.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return stats
}

// add counts rec for player A.
func (s Stats) add(rec GameRecord) Stats {
	var wins, losses, draws = s.Wins, s.Losses, s.Draws
	switch {
	case rec.Result == Draw:
		draws++
	case rec.Result == WhiteWins && rec.AIsWhite, rec.Result == BlackWins && !rec.AIsWhite:
		wins++
	default:
		losses++
	}
	return ComputeStats(wins, losses, draws)
}
