package teamstats

// TeamStatistics carries one team's aggregated metrics for a selection of
// seasons and an optional round window. Metrics are grouped into four
// categories, each split into raw totals, per-game means and per-match
// ratio means. The split is intentionally typed: a metric missing from a
// sub-struct is a compile error, not a silent nil on the wire.
type TeamStatistics struct {
	TeamID           int64  `json:"team_id"`
	TeamName         string `json:"team_name"`
	TeamFullName     string `json:"team_full_name"`
	TeamAbbreviation string `json:"team_abbreviation"`
	LeagueName       string `json:"league_name"`
	MatchesPlayed    int    `json:"matches_played"`

	General   General   `json:"general"`
	Attacking Attacking `json:"attacking"`
	Defensive Defensive `json:"defensive"`
	Passing   Passing   `json:"passing"`
}

type General struct {
	Raw        GeneralRaw        `json:"raw"`
	Normalized GeneralNormalized `json:"normalized"`
}

type GeneralRaw struct {
	Wins           int64 `json:"wins"`
	Draws          int64 `json:"draws"`
	Losses         int64 `json:"losses"`
	Points         int64 `json:"points"`
	GoalsFor       int64 `json:"goals_for"`
	GoalsAgainst   int64 `json:"goals_against"`
	GoalDifference int64 `json:"goal_difference"`
	CleanSheets    int64 `json:"clean_sheets"`
	FailedToScore  int64 `json:"failed_to_score"`
}

type GeneralNormalized struct {
	PointsPerGame   float64 `json:"points_per_game"`
	GoalsPerGame    float64 `json:"goals_per_game"`
	ConcededPerGame float64 `json:"conceded_per_game"`
	WinRate         float64 `json:"win_rate"`
	DrawRate        float64 `json:"draw_rate"`
	LossRate        float64 `json:"loss_rate"`
	AvgPossession   float64 `json:"avg_possession"`
}

type Attacking struct {
	Raw         AttackingRaw         `json:"raw"`
	Normalized  AttackingNormalized  `json:"normalized"`
	Percentages AttackingPercentages `json:"percentages"`
}

type AttackingRaw struct {
	Shots                  int64   `json:"shots"`
	ShotsOnGoal            int64   `json:"shots_on_goal"`
	ShotsOffGoal           int64   `json:"shots_off_goal"`
	XG                     float64 `json:"xg"`
	CornerKicks            int64   `json:"corner_kicks"`
	Offsides               int64   `json:"offsides"`
	BlockedShots           int64   `json:"blocked_shots"`
	BigChances             int64   `json:"big_chances"`
	ShotsInsideBox         int64   `json:"shots_inside_box"`
	ShotsOutsideBox        int64   `json:"shots_outside_box"`
	HitWoodwork            int64   `json:"hit_woodwork"`
	FreeKicks              int64   `json:"free_kicks"`
	ThrowIns               int64   `json:"throw_ins"`
	TouchesInOppositionBox int64   `json:"touches_in_opposition_box"`
}

type AttackingNormalized struct {
	ShotsPerGame        float64 `json:"shots_per_game"`
	ShotsOnGoalPerGame  float64 `json:"shots_on_goal_per_game"`
	XGPerGame           float64 `json:"xg_per_game"`
	BigChancesPerGame   float64 `json:"big_chances_per_game"`
	CornersPerGame      float64 `json:"corners_per_game"`
	OffsidesPerGame     float64 `json:"offsides_per_game"`
	TouchesInBoxPerGame float64 `json:"touches_in_box_per_game"`
}

// AttackingPercentages holds metrics that are already ratios per match.
// They aggregate as the mean of per-match ratios, never as a ratio of
// summed numerators and denominators.
type AttackingPercentages struct {
	ShotAccuracy   float64 `json:"shot_accuracy"`
	GoalEfficiency float64 `json:"goal_efficiency"`
	ConversionRate float64 `json:"conversion_rate"`
	XGDifference   float64 `json:"xg_difference"`
	XGEfficiency   float64 `json:"xg_efficiency"`
}

type Defensive struct {
	Raw         DefensiveRaw         `json:"raw"`
	Normalized  DefensiveNormalized  `json:"normalized"`
	Percentages DefensivePercentages `json:"percentages"`
}

type DefensiveRaw struct {
	Fouls            int64 `json:"fouls"`
	GoalkeeperSaves  int64 `json:"goalkeeper_saves"`
	YellowCards      int64 `json:"yellow_cards"`
	RedCards         int64 `json:"red_cards"`
	Clearances       int64 `json:"clearances"`
	Interceptions    int64 `json:"interceptions"`
	TacklesAttempted int64 `json:"tackles_attempted"`
	TacklesWon       int64 `json:"tackles_won"`
}

type DefensiveNormalized struct {
	FoulsPerGame         float64 `json:"fouls_per_game"`
	SavesPerGame         float64 `json:"saves_per_game"`
	YellowsPerGame       float64 `json:"yellows_per_game"`
	ClearancesPerGame    float64 `json:"clearances_per_game"`
	InterceptionsPerGame float64 `json:"interceptions_per_game"`
	TacklesPerGame       float64 `json:"tackles_per_game"`
}

type DefensivePercentages struct {
	TackleSuccessRate float64 `json:"tackle_success_rate"`
}

type Passing struct {
	Raw         PassingRaw         `json:"raw"`
	Normalized  PassingNormalized  `json:"normalized"`
	Percentages PassingPercentages `json:"percentages"`
}

type PassingRaw struct {
	PassesAttempted           int64 `json:"passes_attempted"`
	PassesCompleted           int64 `json:"passes_completed"`
	FinalThirdPassesAttempted int64 `json:"final_third_passes_attempted"`
	FinalThirdPassesCompleted int64 `json:"final_third_passes_completed"`
	CrossesAttempted          int64 `json:"crosses_attempted"`
	CrossesCompleted          int64 `json:"crosses_completed"`
}

type PassingNormalized struct {
	PassesPerGame           float64 `json:"passes_per_game"`
	PassesCompletedPerGame  float64 `json:"passes_completed_per_game"`
	FinalThirdPassesPerGame float64 `json:"final_third_passes_per_game"`
	CrossesPerGame          float64 `json:"crosses_per_game"`
}

type PassingPercentages struct {
	PassAccuracy           float64 `json:"pass_accuracy"`
	FinalThirdPassAccuracy float64 `json:"final_third_pass_accuracy"`
	CrossAccuracy          float64 `json:"cross_accuracy"`
}

// Filter scopes both the per-team aggregation and the league-average
// rollup. Round bounds are independently nullable: a present start with
// an absent end filters on the lower bound only.
type Filter struct {
	TeamIDs    []int64
	Seasons    []string
	RoundStart *int
	RoundEnd   *int
}

// Empty reports whether the filter trivially selects nothing. Callers
// short-circuit to an empty result without touching the store.
func (f Filter) Empty() bool {
	return len(f.TeamIDs) == 0 || len(f.Seasons) == 0
}
