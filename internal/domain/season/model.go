package season

// Season is one edition of a league. Name uses the "YYYY_YYYY" form,
// e.g. "2022_2023".
type Season struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Status     string `json:"status"`
	LeagueID   int64  `json:"league_id"`
	LeagueName string `json:"league_name,omitempty"`
	Country    string `json:"country,omitempty"`
}
