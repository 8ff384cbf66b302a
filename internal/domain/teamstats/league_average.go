package teamstats

// LeagueAverage is the two-level rollup for one league: every metric is
// first aggregated per team, then averaged across all teams of the
// league that have qualifying matches. A league average therefore
// describes the average team's average game, and teams with fewer
// qualifying matches weigh the same as their peers.
//
// The raw sub-structs carry fewer metrics than the per-team ones on
// purpose; an averaged total only makes sense for the headline counters.
type LeagueAverage struct {
	LeagueName      string `json:"league_name"`
	IsLeagueAverage bool   `json:"isLeagueAverage"`

	General   LeagueAverageGeneral   `json:"general"`
	Attacking LeagueAverageAttacking `json:"attacking"`
	Defensive LeagueAverageDefensive `json:"defensive"`
	Passing   LeagueAveragePassing   `json:"passing"`
}

type LeagueAverageGeneral struct {
	Raw        LeagueAverageGeneralRaw `json:"raw"`
	Normalized GeneralNormalized       `json:"normalized"`
}

type LeagueAverageGeneralRaw struct {
	Wins           float64 `json:"wins"`
	Draws          float64 `json:"draws"`
	Losses         float64 `json:"losses"`
	Points         float64 `json:"points"`
	GoalsFor       float64 `json:"goals_for"`
	GoalsAgainst   float64 `json:"goals_against"`
	GoalDifference float64 `json:"goal_difference"`
}

type LeagueAverageAttacking struct {
	Raw         LeagueAverageAttackingRaw         `json:"raw"`
	Normalized  AttackingNormalized               `json:"normalized"`
	Percentages LeagueAverageAttackingPercentages `json:"percentages"`
}

type LeagueAverageAttackingRaw struct {
	Shots       float64 `json:"shots"`
	ShotsOnGoal float64 `json:"shots_on_goal"`
	XG          float64 `json:"xg"`
	CornerKicks float64 `json:"corner_kicks"`
}

type LeagueAverageAttackingPercentages struct {
	ShotAccuracy   float64 `json:"shot_accuracy"`
	GoalEfficiency float64 `json:"goal_efficiency"`
	ConversionRate float64 `json:"conversion_rate"`
}

type LeagueAverageDefensive struct {
	Raw         LeagueAverageDefensiveRaw `json:"raw"`
	Normalized  DefensiveNormalized       `json:"normalized"`
	Percentages DefensivePercentages      `json:"percentages"`
}

type LeagueAverageDefensiveRaw struct {
	Fouls           float64 `json:"fouls"`
	GoalkeeperSaves float64 `json:"goalkeeper_saves"`
}

type LeagueAveragePassing struct {
	Raw         LeagueAveragePassingRaw `json:"raw"`
	Normalized  PassingNormalized       `json:"normalized"`
	Percentages PassingPercentages      `json:"percentages"`
}

type LeagueAveragePassingRaw struct {
	PassesAttempted float64 `json:"passes_attempted"`
	PassesCompleted float64 `json:"passes_completed"`
}
