package standings

// Standing is one league-table row aggregated from played matches.
// Rows are ordered by points, then goal difference, then goals for,
// with team id as the final deterministic tie-break.
type Standing struct {
	TeamID         int64  `json:"id"`
	FullName       string `json:"full_name"`
	TeamName       string `json:"team_name"`
	Name           string `json:"name"`
	ShortName      string `json:"short_name"`
	Abbreviation   string `json:"abbreviation"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Query scopes a standings aggregation. The round window is applied
// only when both bounds are set; a lone bound is ignored.
type Query struct {
	SeasonIDs  []int64
	RoundStart *int
	RoundEnd   *int
}

// RoundFiltered reports whether the round window is active.
func (q Query) RoundFiltered() bool {
	return q.RoundStart != nil && q.RoundEnd != nil
}
