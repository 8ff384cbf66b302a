package ingest

import "time"

// Records mirror the upstream feed's identifiers. Feed ids are stable,
// so they are written straight into the primary key columns and every
// upsert is idempotent.

type LeagueRecord struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type SeasonRecord struct {
	ID       int64  `json:"id"`
	LeagueID int64  `json:"league_id"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Status   string `json:"status"`
}

type TeamRecord struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

// MatchRecord is one fixture. Goals are nil until the match has been
// played; unplayed matches are excluded from every aggregation.
type MatchRecord struct {
	ID         int64     `json:"id"`
	LeagueID   int64     `json:"league_id"`
	SeasonID   int64     `json:"season_id"`
	Round      int       `json:"round"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeGoals  *int      `json:"home_goals"`
	AwayGoals  *int      `json:"away_goals"`
	PlayedAt   time.Time `json:"played_at"`
}

// MatchStatisticRecord is one team's stat line for one match.
type MatchStatisticRecord struct {
	MatchID int64 `json:"match_id"`
	TeamID  int64 `json:"team_id"`

	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	Possession   float64 `json:"possession"`

	Shots                  int     `json:"shots"`
	ShotsOnGoal            int     `json:"shots_on_goal"`
	ShotsOffGoal           int     `json:"shots_off_goal"`
	XG                     float64 `json:"xg"`
	CornerKicks            int     `json:"corner_kicks"`
	Offsides               int     `json:"offsides"`
	BlockedShots           int     `json:"blocked_shots"`
	BigChances             int     `json:"big_chances"`
	ShotsInsideBox         int     `json:"shots_inside_box"`
	ShotsOutsideBox        int     `json:"shots_outside_box"`
	HitWoodwork            int     `json:"hit_woodwork"`
	FreeKicks              int     `json:"free_kicks"`
	ThrowIns               int     `json:"throw_ins"`
	TouchesInOppositionBox int     `json:"touches_in_opposition_box"`

	Fouls            int `json:"fouls"`
	GoalkeeperSaves  int `json:"goalkeeper_saves"`
	YellowCards      int `json:"yellow_cards"`
	RedCards         int `json:"red_cards"`
	Clearances       int `json:"clearances"`
	Interceptions    int `json:"interceptions"`
	TacklesAttempted int `json:"tackles_attempted"`
	TacklesWon       int `json:"tackles_won"`

	PassesAttempted           int `json:"passes_attempted"`
	PassesCompleted           int `json:"passes_completed"`
	FinalThirdPassesAttempted int `json:"final_third_passes_attempted"`
	FinalThirdPassesCompleted int `json:"final_third_passes_completed"`
	CrossesAttempted          int `json:"crosses_attempted"`
	CrossesCompleted          int `json:"crosses_completed"`
}
