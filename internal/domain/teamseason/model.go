package teamseason

// Membership records that a team has a season rollup for one season.
// Used to intersect season sets across several teams.
type Membership struct {
	SeasonID     int64  `json:"season_id"`
	SeasonName   string `json:"name"`
	SeasonStatus string `json:"season_status"`
	LeagueName   string `json:"league_name"`
	Country      string `json:"country"`
	TeamID       int64  `json:"team_id"`
	FullName     string `json:"full_name"`
	ShortName    string `json:"short_name"`
}

// ProgressionRow is one (team, season) summary read from the
// pre-materialized team_seasons table. The per-game and percentage
// fields are derived from the stored totals by DeriveRates;
// CleanSheetPercentage is nil when the rollup has no played matches.
type ProgressionRow struct {
	TeamName         string `json:"team_name"`
	TeamFullName     string `json:"team_full_name"`
	TeamAbbreviation string `json:"team_abbreviation"`
	ID               int64  `json:"id"`
	TeamID           int64  `json:"team_id"`
	Season           string `json:"season"`
	LeagueName       string `json:"league_name"`

	MatchesPlayed  int `json:"matches_played"`
	Points         int `json:"points"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	CleanSheets    int `json:"clean_sheets"`
	FailedToScore  int `json:"failed_to_score"`

	HomeMatches      int `json:"home_matches"`
	AwayMatches      int `json:"away_matches"`
	HomeWins         int `json:"home_wins"`
	HomeDraws        int `json:"home_draws"`
	HomeLosses       int `json:"home_losses"`
	AwayWins         int `json:"away_wins"`
	AwayDraws        int `json:"away_draws"`
	AwayLosses       int `json:"away_losses"`
	HomeGoalsFor     int `json:"home_goals_for"`
	HomeGoalsAgainst int `json:"home_goals_against"`
	AwayGoalsFor     int `json:"away_goals_for"`
	AwayGoalsAgainst int `json:"away_goals_against"`

	PointsPerGame        float64  `json:"points_per_game"`
	WinPercentage        float64  `json:"win_percentage"`
	HomeWinPercentage    float64  `json:"home_win_percentage"`
	AwayWinPercentage    float64  `json:"away_win_percentage"`
	GoalsPerGame         float64  `json:"goals_per_game"`
	GoalsConcededPerGame float64  `json:"goals_conceded_per_game"`
	CleanSheetPercentage *float64 `json:"clean_sheet_percentage"`
}
