package postgres

type membershipTableModel struct {
	SeasonID     int64  `db:"season_id"`
	SeasonName   string `db:"season_name"`
	SeasonStatus string `db:"season_status"`
	LeagueName   string `db:"league_name"`
	Country      string `db:"country"`
	TeamID       int64  `db:"team_id"`
	FullName     string `db:"full_name"`
	ShortName    string `db:"short_name"`
}

type progressionTableModel struct {
	TeamName         string `db:"team_name"`
	TeamFullName     string `db:"team_full_name"`
	TeamAbbreviation string `db:"team_abbreviation"`
	ID               int64  `db:"id"`
	TeamID           int64  `db:"team_id"`
	Season           string `db:"season"`
	LeagueName       string `db:"league_name"`

	MatchesPlayed  int `db:"matches_played"`
	Points         int `db:"points"`
	Wins           int `db:"wins"`
	Draws          int `db:"draws"`
	Losses         int `db:"losses"`
	GoalsFor       int `db:"goals_for"`
	GoalsAgainst   int `db:"goals_against"`
	GoalDifference int `db:"goal_difference"`
	CleanSheets    int `db:"clean_sheets"`
	FailedToScore  int `db:"failed_to_score"`

	HomeMatches      int `db:"home_matches"`
	AwayMatches      int `db:"away_matches"`
	HomeWins         int `db:"home_wins"`
	HomeDraws        int `db:"home_draws"`
	HomeLosses       int `db:"home_losses"`
	AwayWins         int `db:"away_wins"`
	AwayDraws        int `db:"away_draws"`
	AwayLosses       int `db:"away_losses"`
	HomeGoalsFor     int `db:"home_goals_for"`
	HomeGoalsAgainst int `db:"home_goals_against"`
	AwayGoalsFor     int `db:"away_goals_for"`
	AwayGoalsAgainst int `db:"away_goals_against"`
}
