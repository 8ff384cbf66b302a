package postgres

import "database/sql"

// teamStatsTableModel mirrors the flat select list of the per-team
// aggregation query. Aggregates are nullable at scan time because the
// underlying statistic columns may be null for individual matches.
type teamStatsTableModel struct {
	TeamID           int64  `db:"team_id"`
	TeamName         string `db:"team_name"`
	TeamFullName     string `db:"team_full_name"`
	TeamAbbreviation string `db:"team_abbreviation"`
	LeagueName       string `db:"league_name"`
	MatchesPlayed    int    `db:"matches_played"`

	Wins           sql.NullInt64 `db:"wins"`
	Draws          sql.NullInt64 `db:"draws"`
	Losses         sql.NullInt64 `db:"losses"`
	Points         sql.NullInt64 `db:"points"`
	GoalsFor       sql.NullInt64 `db:"goals_for"`
	GoalsAgainst   sql.NullInt64 `db:"goals_against"`
	GoalDifference sql.NullInt64 `db:"goal_difference"`
	CleanSheets    sql.NullInt64 `db:"clean_sheets"`
	FailedToScore  sql.NullInt64 `db:"failed_to_score"`

	PointsPerGame   sql.NullFloat64 `db:"points_per_game"`
	GoalsPerGame    sql.NullFloat64 `db:"goals_per_game"`
	ConcededPerGame sql.NullFloat64 `db:"conceded_per_game"`
	WinRate         sql.NullFloat64 `db:"win_rate"`
	DrawRate        sql.NullFloat64 `db:"draw_rate"`
	LossRate        sql.NullFloat64 `db:"loss_rate"`
	AvgPossession   sql.NullFloat64 `db:"avg_possession"`

	Shots                  sql.NullInt64   `db:"shots"`
	ShotsOnGoal            sql.NullInt64   `db:"shots_on_goal"`
	ShotsOffGoal           sql.NullInt64   `db:"shots_off_goal"`
	XG                     sql.NullFloat64 `db:"xg"`
	CornerKicks            sql.NullInt64   `db:"corner_kicks"`
	Offsides               sql.NullInt64   `db:"offsides"`
	BlockedShots           sql.NullInt64   `db:"blocked_shots"`
	BigChances             sql.NullInt64   `db:"big_chances"`
	ShotsInsideBox         sql.NullInt64   `db:"shots_inside_box"`
	ShotsOutsideBox        sql.NullInt64   `db:"shots_outside_box"`
	HitWoodwork            sql.NullInt64   `db:"hit_woodwork"`
	FreeKicks              sql.NullInt64   `db:"free_kicks"`
	ThrowIns               sql.NullInt64   `db:"throw_ins"`
	TouchesInOppositionBox sql.NullInt64   `db:"touches_in_opposition_box"`

	ShotAccuracy   sql.NullFloat64 `db:"shot_accuracy"`
	GoalEfficiency sql.NullFloat64 `db:"goal_efficiency"`
	ConversionRate sql.NullFloat64 `db:"conversion_rate"`
	XGDifference   sql.NullFloat64 `db:"xg_difference"`
	XGEfficiency   sql.NullFloat64 `db:"xg_efficiency"`

	ShotsPerGame        sql.NullFloat64 `db:"shots_per_game"`
	ShotsOnGoalPerGame  sql.NullFloat64 `db:"shots_on_goal_per_game"`
	XGPerGame           sql.NullFloat64 `db:"xg_per_game"`
	BigChancesPerGame   sql.NullFloat64 `db:"big_chances_per_game"`
	CornersPerGame      sql.NullFloat64 `db:"corners_per_game"`
	OffsidesPerGame     sql.NullFloat64 `db:"offsides_per_game"`
	TouchesInBoxPerGame sql.NullFloat64 `db:"touches_in_box_per_game"`

	Fouls            sql.NullInt64 `db:"fouls"`
	GoalkeeperSaves  sql.NullInt64 `db:"goalkeeper_saves"`
	YellowCards      sql.NullInt64 `db:"yellow_cards"`
	RedCards         sql.NullInt64 `db:"red_cards"`
	Clearances       sql.NullInt64 `db:"clearances"`
	Interceptions    sql.NullInt64 `db:"interceptions"`
	TacklesAttempted sql.NullInt64 `db:"tackles_attempted"`
	TacklesWon       sql.NullInt64 `db:"tackles_won"`

	TackleSuccessRate sql.NullFloat64 `db:"tackle_success_rate"`

	FoulsPerGame         sql.NullFloat64 `db:"fouls_per_game"`
	SavesPerGame         sql.NullFloat64 `db:"saves_per_game"`
	YellowsPerGame       sql.NullFloat64 `db:"yellows_per_game"`
	ClearancesPerGame    sql.NullFloat64 `db:"clearances_per_game"`
	InterceptionsPerGame sql.NullFloat64 `db:"interceptions_per_game"`
	TacklesPerGame       sql.NullFloat64 `db:"tackles_per_game"`

	PassesAttempted           sql.NullInt64 `db:"passes_attempted"`
	PassesCompleted           sql.NullInt64 `db:"passes_completed"`
	FinalThirdPassesAttempted sql.NullInt64 `db:"final_third_passes_attempted"`
	FinalThirdPassesCompleted sql.NullInt64 `db:"final_third_passes_completed"`
	CrossesAttempted          sql.NullInt64 `db:"crosses_attempted"`
	CrossesCompleted          sql.NullInt64 `db:"crosses_completed"`

	PassAccuracy           sql.NullFloat64 `db:"pass_accuracy"`
	FinalThirdPassAccuracy sql.NullFloat64 `db:"final_third_pass_accuracy"`
	CrossAccuracy          sql.NullFloat64 `db:"cross_accuracy"`

	PassesPerGame           sql.NullFloat64 `db:"passes_per_game"`
	PassesCompletedPerGame  sql.NullFloat64 `db:"passes_completed_per_game"`
	FinalThirdPassesPerGame sql.NullFloat64 `db:"final_third_passes_per_game"`
	CrossesPerGame          sql.NullFloat64 `db:"crosses_per_game"`
}

// teamMetricsTableModel is one level-one row of the league-average
// rollup: a single team's aggregates within its league. The cross-team
// averaging happens in teamstats.AverageByLeague.
type teamMetricsTableModel struct {
	LeagueName string `db:"league_name"`
	TeamID     int64  `db:"team_id"`

	PointsPerGame   sql.NullFloat64 `db:"points_per_game"`
	GoalsPerGame    sql.NullFloat64 `db:"goals_per_game"`
	ConcededPerGame sql.NullFloat64 `db:"conceded_per_game"`
	WinRate         sql.NullFloat64 `db:"win_rate"`
	DrawRate        sql.NullFloat64 `db:"draw_rate"`
	LossRate        sql.NullFloat64 `db:"loss_rate"`
	AvgPossession   sql.NullFloat64 `db:"avg_possession"`

	Wins           sql.NullFloat64 `db:"wins"`
	Draws          sql.NullFloat64 `db:"draws"`
	Losses         sql.NullFloat64 `db:"losses"`
	Points         sql.NullFloat64 `db:"points"`
	GoalsFor       sql.NullFloat64 `db:"goals_for"`
	GoalsAgainst   sql.NullFloat64 `db:"goals_against"`
	GoalDifference sql.NullFloat64 `db:"goal_difference"`

	ShotsPerGame        sql.NullFloat64 `db:"shots_per_game"`
	ShotsOnGoalPerGame  sql.NullFloat64 `db:"shots_on_goal_per_game"`
	XGPerGame           sql.NullFloat64 `db:"xg_per_game"`
	BigChancesPerGame   sql.NullFloat64 `db:"big_chances_per_game"`
	CornersPerGame      sql.NullFloat64 `db:"corners_per_game"`
	OffsidesPerGame     sql.NullFloat64 `db:"offsides_per_game"`
	TouchesInBoxPerGame sql.NullFloat64 `db:"touches_in_box_per_game"`
	Shots               sql.NullFloat64 `db:"shots"`
	ShotsOnGoal         sql.NullFloat64 `db:"shots_on_goal"`
	XG                  sql.NullFloat64 `db:"xg"`
	CornerKicks         sql.NullFloat64 `db:"corner_kicks"`
	ShotAccuracy        sql.NullFloat64 `db:"shot_accuracy"`
	GoalEfficiency      sql.NullFloat64 `db:"goal_efficiency"`
	ConversionRate      sql.NullFloat64 `db:"conversion_rate"`

	FoulsPerGame         sql.NullFloat64 `db:"fouls_per_game"`
	SavesPerGame         sql.NullFloat64 `db:"saves_per_game"`
	YellowsPerGame       sql.NullFloat64 `db:"yellows_per_game"`
	ClearancesPerGame    sql.NullFloat64 `db:"clearances_per_game"`
	InterceptionsPerGame sql.NullFloat64 `db:"interceptions_per_game"`
	TacklesPerGame       sql.NullFloat64 `db:"tackles_per_game"`
	Fouls                sql.NullFloat64 `db:"fouls"`
	GoalkeeperSaves      sql.NullFloat64 `db:"goalkeeper_saves"`
	TackleSuccessRate    sql.NullFloat64 `db:"tackle_success_rate"`

	PassesPerGame           sql.NullFloat64 `db:"passes_per_game"`
	PassesCompletedPerGame  sql.NullFloat64 `db:"passes_completed_per_game"`
	FinalThirdPassesPerGame sql.NullFloat64 `db:"final_third_passes_per_game"`
	CrossesPerGame          sql.NullFloat64 `db:"crosses_per_game"`
	PassesAttempted         sql.NullFloat64 `db:"passes_attempted"`
	PassesCompleted         sql.NullFloat64 `db:"passes_completed"`
	PassAccuracy            sql.NullFloat64 `db:"pass_accuracy"`
	FinalThirdPassAccuracy  sql.NullFloat64 `db:"final_third_pass_accuracy"`
	CrossAccuracy           sql.NullFloat64 `db:"cross_accuracy"`
}
