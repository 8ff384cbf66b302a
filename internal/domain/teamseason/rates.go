package teamseason

import "math"

// DeriveRates fills the per-game and percentage fields from the stored
// totals. Percentages are on the 0-100 scale. A rollup with no played
// matches keeps zero rates and a nil clean sheet percentage; home and
// away splits guard their own denominators the same way.
func (r *ProgressionRow) DeriveRates() {
	if r.MatchesPlayed > 0 {
		played := float64(r.MatchesPlayed)
		r.PointsPerGame = round2(float64(r.Points) / played)
		r.WinPercentage = round2(float64(r.Wins) / played * 100)
		r.GoalsPerGame = round2(float64(r.GoalsFor) / played)
		r.GoalsConcededPerGame = round2(float64(r.GoalsAgainst) / played)
		cleanSheetPct := round2(float64(r.CleanSheets) / played * 100)
		r.CleanSheetPercentage = &cleanSheetPct
	}

	if r.HomeMatches > 0 {
		r.HomeWinPercentage = round2(float64(r.HomeWins) / float64(r.HomeMatches) * 100)
	}
	if r.AwayMatches > 0 {
		r.AwayWinPercentage = round2(float64(r.AwayWins) / float64(r.AwayMatches) * 100)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
