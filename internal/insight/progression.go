package insight

import (
	"sort"
	"strings"

	"github.com/riskibarqy/soccer-insights/internal/domain/teamseason"
)

// ProgressionMetric is one selectable line of the season progression
// chart.
type ProgressionMetric struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Category     string `json:"category"`
	IsPercentage bool   `json:"is_percentage,omitempty"`
}

var ProgressionMetrics = []ProgressionMetric{
	{Key: "points_per_game", Label: "Points Per Game", Category: "Performance"},
	{Key: "points", Label: "Total Points", Category: "Performance"},
	{Key: "win_percentage", Label: "Win %", Category: "Performance", IsPercentage: true},
	{Key: "wins", Label: "Wins", Category: "Performance"},
	{Key: "draws", Label: "Draws", Category: "Performance"},
	{Key: "losses", Label: "Losses", Category: "Performance"},
	{Key: "matches_played", Label: "Matches Played", Category: "Performance"},

	{Key: "goals_per_game", Label: "Goals Per Game", Category: "Goals"},
	{Key: "goals_conceded_per_game", Label: "Goals Conceded Per Game", Category: "Goals"},
	{Key: "goals_for", Label: "Goals Scored", Category: "Goals"},
	{Key: "goals_against", Label: "Goals Conceded", Category: "Goals"},
	{Key: "goal_difference", Label: "Goal Difference", Category: "Goals"},

	{Key: "clean_sheet_percentage", Label: "Clean Sheet %", Category: "Defensive", IsPercentage: true},
	{Key: "clean_sheets", Label: "Clean Sheets", Category: "Defensive"},
	{Key: "failed_to_score", Label: "Failed to Score", Category: "Defensive"},

	{Key: "home_win_percentage", Label: "Home Win %", Category: "Home", IsPercentage: true},
	{Key: "home_wins", Label: "Home Wins", Category: "Home"},
	{Key: "home_draws", Label: "Home Draws", Category: "Home"},
	{Key: "home_losses", Label: "Home Losses", Category: "Home"},
	{Key: "home_matches", Label: "Home Matches", Category: "Home"},
	{Key: "home_goals_for", Label: "Home Goals Scored", Category: "Home"},
	{Key: "home_goals_against", Label: "Home Goals Conceded", Category: "Home"},

	{Key: "away_win_percentage", Label: "Away Win %", Category: "Away", IsPercentage: true},
	{Key: "away_wins", Label: "Away Wins", Category: "Away"},
	{Key: "away_draws", Label: "Away Draws", Category: "Away"},
	{Key: "away_losses", Label: "Away Losses", Category: "Away"},
	{Key: "away_matches", Label: "Away Matches", Category: "Away"},
	{Key: "away_goals_for", Label: "Away Goals Scored", Category: "Away"},
	{Key: "away_goals_against", Label: "Away Goals Conceded", Category: "Away"},
}

// MetricValue resolves one progression metric from a season row.
// clean_sheet_percentage is absent for zero-match rollups.
func MetricValue(row teamseason.ProgressionRow, key string) (float64, bool) {
	switch key {
	case "points_per_game":
		return row.PointsPerGame, true
	case "points":
		return float64(row.Points), true
	case "win_percentage":
		return row.WinPercentage, true
	case "wins":
		return float64(row.Wins), true
	case "draws":
		return float64(row.Draws), true
	case "losses":
		return float64(row.Losses), true
	case "matches_played":
		return float64(row.MatchesPlayed), true
	case "goals_per_game":
		return row.GoalsPerGame, true
	case "goals_conceded_per_game":
		return row.GoalsConcededPerGame, true
	case "goals_for":
		return float64(row.GoalsFor), true
	case "goals_against":
		return float64(row.GoalsAgainst), true
	case "goal_difference":
		return float64(row.GoalDifference), true
	case "clean_sheet_percentage":
		if row.CleanSheetPercentage == nil {
			return 0, false
		}
		return *row.CleanSheetPercentage, true
	case "clean_sheets":
		return float64(row.CleanSheets), true
	case "failed_to_score":
		return float64(row.FailedToScore), true
	case "home_win_percentage":
		return row.HomeWinPercentage, true
	case "home_wins":
		return float64(row.HomeWins), true
	case "home_draws":
		return float64(row.HomeDraws), true
	case "home_losses":
		return float64(row.HomeLosses), true
	case "home_matches":
		return float64(row.HomeMatches), true
	case "home_goals_for":
		return float64(row.HomeGoalsFor), true
	case "home_goals_against":
		return float64(row.HomeGoalsAgainst), true
	case "away_win_percentage":
		return row.AwayWinPercentage, true
	case "away_wins":
		return float64(row.AwayWins), true
	case "away_draws":
		return float64(row.AwayDraws), true
	case "away_losses":
		return float64(row.AwayLosses), true
	case "away_matches":
		return float64(row.AwayMatches), true
	case "away_goals_for":
		return float64(row.AwayGoalsFor), true
	case "away_goals_against":
		return float64(row.AwayGoalsAgainst), true
	default:
		return 0, false
	}
}

// Seasons returns the distinct season names of the rows in
// chronological order. Season names sort chronologically because they
// are year-prefixed.
func Seasons(rows []teamseason.ProgressionRow) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Season]; ok {
			continue
		}
		seen[row.Season] = struct{}{}
		out = append(out, row.Season)
	}
	sort.Strings(out)
	return out
}

// AvailabilityMatrix reports which seasons each team has a rollup for.
func AvailabilityMatrix(rows []teamseason.ProgressionRow) map[int64]map[string]bool {
	out := make(map[int64]map[string]bool)
	for _, row := range rows {
		seasons, ok := out[row.TeamID]
		if !ok {
			seasons = make(map[string]bool)
			out[row.TeamID] = seasons
		}
		seasons[row.Season] = true
	}
	return out
}

// TeamMatchCount is one team's played-match count inside a season.
type TeamMatchCount struct {
	Team    string `json:"team"`
	Matches int    `json:"matches"`
}

// SeasonDiscrepancy flags a season whose teams disagree on how many
// matches were played, usually a sign of an incomplete ingest.
type SeasonDiscrepancy struct {
	Season string           `json:"season"`
	Counts []TeamMatchCount `json:"counts"`
}

// DetectDiscrepancies returns every season with more than one distinct
// matches_played value across its rows, in chronological order.
func DetectDiscrepancies(rows []teamseason.ProgressionRow) []SeasonDiscrepancy {
	var out []SeasonDiscrepancy
	for _, season := range Seasons(rows) {
		distinct := make(map[int]struct{})
		var counts []TeamMatchCount
		for _, row := range rows {
			if row.Season != season {
				continue
			}
			distinct[row.MatchesPlayed] = struct{}{}
			counts = append(counts, TeamMatchCount{
				Team:    row.TeamFullName,
				Matches: row.MatchesPlayed,
			})
		}
		if len(distinct) > 1 {
			out = append(out, SeasonDiscrepancy{
				Season: season,
				Counts: counts,
			})
		}
	}
	return out
}

// DetectInProgress reports the chronologically last season as still in
// progress when its highest match count is strictly below the previous
// season's. Needs at least two seasons to compare.
func DetectInProgress(rows []teamseason.ProgressionRow) (string, bool) {
	seasons := Seasons(rows)
	if len(seasons) < 2 {
		return "", false
	}

	last := seasons[len(seasons)-1]
	previous := seasons[len(seasons)-2]

	maxMatches := func(season string) int {
		max := 0
		for _, row := range rows {
			if row.Season == season && row.MatchesPlayed > max {
				max = row.MatchesPlayed
			}
		}
		return max
	}

	if maxMatches(last) < maxMatches(previous) {
		return last, true
	}
	return "", false
}

// FormatSeason shortens a wire season name for display:
// "2017_2018" becomes "17/18". Other shapes pass through untouched.
func FormatSeason(season string) string {
	parts := strings.Split(season, "_")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 4 {
		return season
	}
	return parts[0][2:] + "/" + parts[1][2:]
}
