package postgres

type standingsMatchModel struct {
	Round      int   `db:"round"`
	HomeTeamID int64 `db:"home_team_id"`
	AwayTeamID int64 `db:"away_team_id"`
	HomeGoals  int   `db:"home_goals"`
	AwayGoals  int   `db:"away_goals"`
}

type standingsTeamModel struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	FullName     string `db:"full_name"`
	ShortName    string `db:"short_name"`
	Abbreviation string `db:"abbreviation"`
}
