// Package insight holds the chart and metric catalogs the dashboard
// renders from, plus the derivations it applies on top of the
// aggregated statistics. Metric access is typed: an unknown key
// resolves to a missing value instead of a nil lookup.
package insight

import "github.com/riskibarqy/soccer-insights/internal/domain/teamstats"

type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryAttacking Category = "attacking"
	CategoryDefensive Category = "defensive"
	CategoryPassing   Category = "passing"
)

type Mode string

const (
	ModeRaw         Mode = "raw"
	ModeNormalized  Mode = "normalized"
	ModePercentages Mode = "percentages"
)

// ChartSpec describes one chart of the statistics dashboard. Source,
// when set, overrides the requested mode: ratio charts always read
// from the percentages block no matter which mode is toggled.
type ChartSpec struct {
	Title         string `json:"title"`
	Key           string `json:"key"`
	IsPercentage  bool   `json:"is_percentage"`
	Source        Mode   `json:"source,omitempty"`
	HasDisclaimer bool   `json:"has_disclaimer,omitempty"`
}

const (
	// InitialChartCount is how many charts a category shows at first.
	InitialChartCount = 6
	// LoadMoreStep is how many more charts each load-more reveals.
	LoadMoreStep = 3
)

var normalizedCharts = map[Category][]ChartSpec{
	CategoryGeneral: {
		{Title: "Points Per Game", Key: "points_per_game"},
		{Title: "Win Rate", Key: "win_rate", IsPercentage: true},
		{Title: "Draw Rate", Key: "draw_rate", IsPercentage: true},
		{Title: "Loss Rate", Key: "loss_rate", IsPercentage: true},
		{Title: "Goals Per Game", Key: "goals_per_game"},
		{Title: "Conceded Per Game", Key: "conceded_per_game"},
		{Title: "Avg Possession", Key: "avg_possession", IsPercentage: true},
	},
	CategoryAttacking: {
		{Title: "xG Per Game", Key: "xg_per_game"},
		{Title: "Shots Per Game", Key: "shots_per_game"},
		{Title: "Shots on Goal Per Game", Key: "shots_on_goal_per_game"},
		{Title: "Big Chances Per Game", Key: "big_chances_per_game"},
		{Title: "Corners Per Game", Key: "corners_per_game"},
		{Title: "Touches in Box Per Game", Key: "touches_in_box_per_game"},
		{Title: "Offsides Per Game", Key: "offsides_per_game"},
		{Title: "Shot Accuracy *", Key: "shot_accuracy", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
		{Title: "Conversion Rate *", Key: "conversion_rate", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
		{Title: "Goal Efficiency *", Key: "goal_efficiency", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
		{Title: "xG Efficiency *", Key: "xg_efficiency", Source: ModePercentages, HasDisclaimer: true},
		{Title: "xG Difference *", Key: "xg_difference", Source: ModePercentages, HasDisclaimer: true},
	},
	CategoryDefensive: {
		{Title: "Saves Per Game", Key: "saves_per_game"},
		{Title: "Tackles Per Game", Key: "tackles_per_game"},
		{Title: "Interceptions Per Game", Key: "interceptions_per_game"},
		{Title: "Clearances Per Game", Key: "clearances_per_game"},
		{Title: "Fouls Per Game", Key: "fouls_per_game"},
		{Title: "Yellows Per Game", Key: "yellows_per_game"},
		{Title: "Tackle Success Rate *", Key: "tackle_success_rate", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
	},
	CategoryPassing: {
		{Title: "Pass Accuracy *", Key: "pass_accuracy", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
		{Title: "Passes Per Game", Key: "passes_per_game"},
		{Title: "Passes Completed Per Game", Key: "passes_completed_per_game"},
		{Title: "Final Third Passes Per Game", Key: "final_third_passes_per_game"},
		{Title: "Final Third Pass Accuracy *", Key: "final_third_pass_accuracy", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
		{Title: "Crosses Per Game", Key: "crosses_per_game"},
		{Title: "Cross Accuracy *", Key: "cross_accuracy", IsPercentage: true, Source: ModePercentages, HasDisclaimer: true},
	},
}

var rawCharts = map[Category][]ChartSpec{
	CategoryGeneral: {
		{Title: "Points", Key: "points"},
		{Title: "Wins", Key: "wins"},
		{Title: "Draws", Key: "draws"},
		{Title: "Losses", Key: "losses"},
		{Title: "Goals For", Key: "goals_for"},
		{Title: "Goals Against", Key: "goals_against"},
		{Title: "Goal Difference", Key: "goal_difference"},
		{Title: "Clean Sheets", Key: "clean_sheets"},
		{Title: "Failed to Score", Key: "failed_to_score"},
	},
	CategoryAttacking: {
		{Title: "Shots", Key: "shots"},
		{Title: "Shots on Goal", Key: "shots_on_goal"},
		{Title: "Shots off Goal", Key: "shots_off_goal"},
		{Title: "xG", Key: "xg"},
		{Title: "Corner Kicks", Key: "corner_kicks"},
		{Title: "Offsides", Key: "offsides"},
		{Title: "Blocked Shots", Key: "blocked_shots"},
		{Title: "Big Chances", Key: "big_chances"},
		{Title: "Shots Inside Box", Key: "shots_inside_box"},
		{Title: "Shots Outside Box", Key: "shots_outside_box"},
		{Title: "Hit Woodwork", Key: "hit_woodwork"},
		{Title: "Free Kicks", Key: "free_kicks"},
		{Title: "Throw Ins", Key: "throw_ins"},
		{Title: "Touches in Opposition Box", Key: "touches_in_opposition_box"},
	},
	CategoryDefensive: {
		{Title: "Fouls", Key: "fouls"},
		{Title: "Goalkeeper Saves", Key: "goalkeeper_saves"},
		{Title: "Yellow Cards", Key: "yellow_cards"},
		{Title: "Red Cards", Key: "red_cards"},
		{Title: "Clearances", Key: "clearances"},
		{Title: "Interceptions", Key: "interceptions"},
		{Title: "Tackles Attempted", Key: "tackles_attempted"},
		{Title: "Tackles Won", Key: "tackles_won"},
	},
	CategoryPassing: {
		{Title: "Passes Attempted", Key: "passes_attempted"},
		{Title: "Passes Completed", Key: "passes_completed"},
		{Title: "Final Third Passes Attempted", Key: "final_third_passes_attempted"},
		{Title: "Final Third Passes Completed", Key: "final_third_passes_completed"},
		{Title: "Crosses Attempted", Key: "crosses_attempted"},
		{Title: "Crosses Completed", Key: "crosses_completed"},
	},
}

// NormalizedToRaw pairs each per-game chart with its raw counterpart,
// so a chart toggled to raw mode keeps its slot on the dashboard.
// avg_possession maps to a key no raw block carries; its toggle
// resolves to a missing value, same as the original dashboard.
var NormalizedToRaw = map[string]string{
	"points_per_game":             "points",
	"goals_per_game":              "goals_for",
	"conceded_per_game":           "goals_against",
	"win_rate":                    "wins",
	"draw_rate":                   "draws",
	"loss_rate":                   "losses",
	"avg_possession":              "possession",
	"shots_per_game":              "shots",
	"shots_on_goal_per_game":      "shots_on_goal",
	"xg_per_game":                 "xg",
	"big_chances_per_game":        "big_chances",
	"corners_per_game":            "corner_kicks",
	"offsides_per_game":           "offsides",
	"touches_in_box_per_game":     "touches_in_opposition_box",
	"fouls_per_game":              "fouls",
	"saves_per_game":              "goalkeeper_saves",
	"yellows_per_game":            "yellow_cards",
	"clearances_per_game":         "clearances",
	"interceptions_per_game":      "interceptions",
	"tackles_per_game":            "tackles_attempted",
	"passes_per_game":             "passes_attempted",
	"passes_completed_per_game":   "passes_completed",
	"final_third_passes_per_game": "final_third_passes_attempted",
	"crosses_per_game":            "crosses_attempted",
}

// Charts returns the configured catalog for one category and mode.
// Percentage charts live in the normalized catalog with a Source
// override, so ModePercentages has no catalog of its own.
func Charts(category Category, mode Mode) []ChartSpec {
	var charts []ChartSpec
	switch mode {
	case ModeRaw:
		charts = rawCharts[category]
	case ModeNormalized:
		charts = normalizedCharts[category]
	default:
		return nil
	}
	return append([]ChartSpec(nil), charts...)
}

// RawChart resolves the raw counterpart of a normalized chart.
func RawChart(category Category, normalizedKey string) (ChartSpec, bool) {
	rawKey, ok := NormalizedToRaw[normalizedKey]
	if !ok {
		rawKey = normalizedKey
	}
	for _, chart := range rawCharts[category] {
		if chart.Key == rawKey {
			return chart, true
		}
	}
	return ChartSpec{}, false
}

// Paginate slices the catalog to the currently visible window and
// reports whether a load-more step remains.
func Paginate(charts []ChartSpec, visible int) ([]ChartSpec, bool) {
	if visible < 0 {
		visible = 0
	}
	if visible >= len(charts) {
		return append([]ChartSpec(nil), charts...), false
	}
	return append([]ChartSpec(nil), charts[:visible]...), true
}

// ExtractValue resolves one chart value from a team's statistics. The
// chart's Source override wins over the requested mode. Unknown keys
// report ok=false.
func ExtractValue(team teamstats.TeamStatistics, category Category, mode Mode, chart ChartSpec) (float64, bool) {
	if chart.Source != "" {
		mode = chart.Source
	}

	switch category {
	case CategoryGeneral:
		return extractGeneral(team.General, mode, chart.Key)
	case CategoryAttacking:
		return extractAttacking(team.Attacking, mode, chart.Key)
	case CategoryDefensive:
		return extractDefensive(team.Defensive, mode, chart.Key)
	case CategoryPassing:
		return extractPassing(team.Passing, mode, chart.Key)
	default:
		return 0, false
	}
}

// ValidCharts filters the catalog to charts every selected team can
// resolve a value for.
func ValidCharts(teams []teamstats.TeamStatistics, category Category, mode Mode) []ChartSpec {
	charts := Charts(category, mode)
	out := make([]ChartSpec, 0, len(charts))
	for _, chart := range charts {
		valid := true
		for _, team := range teams {
			if _, ok := ExtractValue(team, category, mode, chart); !ok {
				valid = false
				break
			}
		}
		if valid {
			out = append(out, chart)
		}
	}
	return out
}

func extractGeneral(g teamstats.General, mode Mode, key string) (float64, bool) {
	switch mode {
	case ModeRaw:
		switch key {
		case "wins":
			return float64(g.Raw.Wins), true
		case "draws":
			return float64(g.Raw.Draws), true
		case "losses":
			return float64(g.Raw.Losses), true
		case "points":
			return float64(g.Raw.Points), true
		case "goals_for":
			return float64(g.Raw.GoalsFor), true
		case "goals_against":
			return float64(g.Raw.GoalsAgainst), true
		case "goal_difference":
			return float64(g.Raw.GoalDifference), true
		case "clean_sheets":
			return float64(g.Raw.CleanSheets), true
		case "failed_to_score":
			return float64(g.Raw.FailedToScore), true
		}
	case ModeNormalized:
		switch key {
		case "points_per_game":
			return g.Normalized.PointsPerGame, true
		case "goals_per_game":
			return g.Normalized.GoalsPerGame, true
		case "conceded_per_game":
			return g.Normalized.ConcededPerGame, true
		case "win_rate":
			return g.Normalized.WinRate, true
		case "draw_rate":
			return g.Normalized.DrawRate, true
		case "loss_rate":
			return g.Normalized.LossRate, true
		case "avg_possession":
			return g.Normalized.AvgPossession, true
		}
	}
	return 0, false
}

func extractAttacking(a teamstats.Attacking, mode Mode, key string) (float64, bool) {
	switch mode {
	case ModeRaw:
		switch key {
		case "shots":
			return float64(a.Raw.Shots), true
		case "shots_on_goal":
			return float64(a.Raw.ShotsOnGoal), true
		case "shots_off_goal":
			return float64(a.Raw.ShotsOffGoal), true
		case "xg":
			return a.Raw.XG, true
		case "corner_kicks":
			return float64(a.Raw.CornerKicks), true
		case "offsides":
			return float64(a.Raw.Offsides), true
		case "blocked_shots":
			return float64(a.Raw.BlockedShots), true
		case "big_chances":
			return float64(a.Raw.BigChances), true
		case "shots_inside_box":
			return float64(a.Raw.ShotsInsideBox), true
		case "shots_outside_box":
			return float64(a.Raw.ShotsOutsideBox), true
		case "hit_woodwork":
			return float64(a.Raw.HitWoodwork), true
		case "free_kicks":
			return float64(a.Raw.FreeKicks), true
		case "throw_ins":
			return float64(a.Raw.ThrowIns), true
		case "touches_in_opposition_box":
			return float64(a.Raw.TouchesInOppositionBox), true
		}
	case ModeNormalized:
		switch key {
		case "shots_per_game":
			return a.Normalized.ShotsPerGame, true
		case "shots_on_goal_per_game":
			return a.Normalized.ShotsOnGoalPerGame, true
		case "xg_per_game":
			return a.Normalized.XGPerGame, true
		case "big_chances_per_game":
			return a.Normalized.BigChancesPerGame, true
		case "corners_per_game":
			return a.Normalized.CornersPerGame, true
		case "offsides_per_game":
			return a.Normalized.OffsidesPerGame, true
		case "touches_in_box_per_game":
			return a.Normalized.TouchesInBoxPerGame, true
		}
	case ModePercentages:
		switch key {
		case "shot_accuracy":
			return a.Percentages.ShotAccuracy, true
		case "goal_efficiency":
			return a.Percentages.GoalEfficiency, true
		case "conversion_rate":
			return a.Percentages.ConversionRate, true
		case "xg_difference":
			return a.Percentages.XGDifference, true
		case "xg_efficiency":
			return a.Percentages.XGEfficiency, true
		}
	}
	return 0, false
}

func extractDefensive(d teamstats.Defensive, mode Mode, key string) (float64, bool) {
	switch mode {
	case ModeRaw:
		switch key {
		case "fouls":
			return float64(d.Raw.Fouls), true
		case "goalkeeper_saves":
			return float64(d.Raw.GoalkeeperSaves), true
		case "yellow_cards":
			return float64(d.Raw.YellowCards), true
		case "red_cards":
			return float64(d.Raw.RedCards), true
		case "clearances":
			return float64(d.Raw.Clearances), true
		case "interceptions":
			return float64(d.Raw.Interceptions), true
		case "tackles_attempted":
			return float64(d.Raw.TacklesAttempted), true
		case "tackles_won":
			return float64(d.Raw.TacklesWon), true
		}
	case ModeNormalized:
		switch key {
		case "fouls_per_game":
			return d.Normalized.FoulsPerGame, true
		case "saves_per_game":
			return d.Normalized.SavesPerGame, true
		case "yellows_per_game":
			return d.Normalized.YellowsPerGame, true
		case "clearances_per_game":
			return d.Normalized.ClearancesPerGame, true
		case "interceptions_per_game":
			return d.Normalized.InterceptionsPerGame, true
		case "tackles_per_game":
			return d.Normalized.TacklesPerGame, true
		}
	case ModePercentages:
		if key == "tackle_success_rate" {
			return d.Percentages.TackleSuccessRate, true
		}
	}
	return 0, false
}

func extractPassing(p teamstats.Passing, mode Mode, key string) (float64, bool) {
	switch mode {
	case ModeRaw:
		switch key {
		case "passes_attempted":
			return float64(p.Raw.PassesAttempted), true
		case "passes_completed":
			return float64(p.Raw.PassesCompleted), true
		case "final_third_passes_attempted":
			return float64(p.Raw.FinalThirdPassesAttempted), true
		case "final_third_passes_completed":
			return float64(p.Raw.FinalThirdPassesCompleted), true
		case "crosses_attempted":
			return float64(p.Raw.CrossesAttempted), true
		case "crosses_completed":
			return float64(p.Raw.CrossesCompleted), true
		}
	case ModeNormalized:
		switch key {
		case "passes_per_game":
			return p.Normalized.PassesPerGame, true
		case "passes_completed_per_game":
			return p.Normalized.PassesCompletedPerGame, true
		case "final_third_passes_per_game":
			return p.Normalized.FinalThirdPassesPerGame, true
		case "crosses_per_game":
			return p.Normalized.CrossesPerGame, true
		}
	case ModePercentages:
		switch key {
		case "pass_accuracy":
			return p.Percentages.PassAccuracy, true
		case "final_third_pass_accuracy":
			return p.Percentages.FinalThirdPassAccuracy, true
		case "cross_accuracy":
			return p.Percentages.CrossAccuracy, true
		}
	}
	return 0, false
}
