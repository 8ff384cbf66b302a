package postgres

type leagueTableModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

type seasonTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Year     int    `db:"year"`
	Status   string `db:"status"`
	LeagueID int64  `db:"league_id"`
}
