package postgres

type teamTableModel struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	ShortName    string `db:"short_name"`
	FullName     string `db:"full_name"`
	Abbreviation string `db:"abbreviation"`
}
