package teamstats

import (
	"math"
	"sort"
)

// TeamMetrics is the level-one rollup feeding a league average: one
// team's aggregates over its qualifying matches. Ratio metrics are
// pointers because a team whose matches all lack the underlying
// denominator has no ratio at all; such teams drop out of that
// metric's league mean instead of dragging it toward zero.
type TeamMetrics struct {
	LeagueName string
	TeamID     int64

	Wins           float64
	Draws          float64
	Losses         float64
	Points         float64
	GoalsFor       float64
	GoalsAgainst   float64
	GoalDifference float64

	PointsPerGame   float64
	GoalsPerGame    float64
	ConcededPerGame float64
	WinRate         float64
	DrawRate        float64
	LossRate        float64
	AvgPossession   *float64

	Shots       float64
	ShotsOnGoal float64
	XG          float64
	CornerKicks float64

	ShotsPerGame        float64
	ShotsOnGoalPerGame  float64
	XGPerGame           float64
	BigChancesPerGame   float64
	CornersPerGame      float64
	OffsidesPerGame     float64
	TouchesInBoxPerGame float64

	ShotAccuracy   *float64
	GoalEfficiency *float64
	ConversionRate *float64

	Fouls           float64
	GoalkeeperSaves float64

	FoulsPerGame         float64
	SavesPerGame         float64
	YellowsPerGame       float64
	ClearancesPerGame    float64
	InterceptionsPerGame float64
	TacklesPerGame       float64

	TackleSuccessRate *float64

	PassesAttempted float64
	PassesCompleted float64

	PassesPerGame           float64
	PassesCompletedPerGame  float64
	FinalThirdPassesPerGame float64
	CrossesPerGame          float64

	PassAccuracy           *float64
	FinalThirdPassAccuracy *float64
	CrossAccuracy          *float64
}

// AverageByLeague averages team rollups across the teams of each
// league, one LeagueAverage per league ordered by name. Every team
// weighs the same regardless of how many qualifying matches it played.
// Per-game metrics round to two decimals, rates and accuracies to
// three, averaged raw totals to whole numbers except xg.
func AverageByLeague(rows []TeamMetrics) []LeagueAverage {
	groups := make(map[string][]TeamMetrics)
	names := make([]string, 0)
	for _, row := range rows {
		if _, ok := groups[row.LeagueName]; !ok {
			names = append(names, row.LeagueName)
		}
		groups[row.LeagueName] = append(groups[row.LeagueName], row)
	}
	sort.Strings(names)

	out := make([]LeagueAverage, 0, len(names))
	for _, name := range names {
		out = append(out, averageLeague(name, groups[name]))
	}

	return out
}

func averageLeague(name string, teams []TeamMetrics) LeagueAverage {
	mean := func(pick func(TeamMetrics) float64) float64 {
		sum := 0.0
		for _, team := range teams {
			sum += pick(team)
		}
		return sum / float64(len(teams))
	}
	// Teams with a nil ratio are excluded from that metric's mean.
	meanPtr := func(pick func(TeamMetrics) *float64) float64 {
		sum, count := 0.0, 0
		for _, team := range teams {
			if v := pick(team); v != nil {
				sum += *v
				count++
			}
		}
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	}

	return LeagueAverage{
		LeagueName:      name,
		IsLeagueAverage: true,
		General: LeagueAverageGeneral{
			Raw: LeagueAverageGeneralRaw{
				Wins:           roundWhole(mean(func(t TeamMetrics) float64 { return t.Wins })),
				Draws:          roundWhole(mean(func(t TeamMetrics) float64 { return t.Draws })),
				Losses:         roundWhole(mean(func(t TeamMetrics) float64 { return t.Losses })),
				Points:         roundWhole(mean(func(t TeamMetrics) float64 { return t.Points })),
				GoalsFor:       roundWhole(mean(func(t TeamMetrics) float64 { return t.GoalsFor })),
				GoalsAgainst:   roundWhole(mean(func(t TeamMetrics) float64 { return t.GoalsAgainst })),
				GoalDifference: roundWhole(mean(func(t TeamMetrics) float64 { return t.GoalDifference })),
			},
			Normalized: GeneralNormalized{
				PointsPerGame:   round2(mean(func(t TeamMetrics) float64 { return t.PointsPerGame })),
				GoalsPerGame:    round2(mean(func(t TeamMetrics) float64 { return t.GoalsPerGame })),
				ConcededPerGame: round2(mean(func(t TeamMetrics) float64 { return t.ConcededPerGame })),
				WinRate:         round3(mean(func(t TeamMetrics) float64 { return t.WinRate })),
				DrawRate:        round3(mean(func(t TeamMetrics) float64 { return t.DrawRate })),
				LossRate:        round3(mean(func(t TeamMetrics) float64 { return t.LossRate })),
				AvgPossession:   round3(meanPtr(func(t TeamMetrics) *float64 { return t.AvgPossession })),
			},
		},
		Attacking: LeagueAverageAttacking{
			Raw: LeagueAverageAttackingRaw{
				Shots:       roundWhole(mean(func(t TeamMetrics) float64 { return t.Shots })),
				ShotsOnGoal: roundWhole(mean(func(t TeamMetrics) float64 { return t.ShotsOnGoal })),
				XG:          round2(mean(func(t TeamMetrics) float64 { return t.XG })),
				CornerKicks: roundWhole(mean(func(t TeamMetrics) float64 { return t.CornerKicks })),
			},
			Normalized: AttackingNormalized{
				ShotsPerGame:        round2(mean(func(t TeamMetrics) float64 { return t.ShotsPerGame })),
				ShotsOnGoalPerGame:  round2(mean(func(t TeamMetrics) float64 { return t.ShotsOnGoalPerGame })),
				XGPerGame:           round3(mean(func(t TeamMetrics) float64 { return t.XGPerGame })),
				BigChancesPerGame:   round2(mean(func(t TeamMetrics) float64 { return t.BigChancesPerGame })),
				CornersPerGame:      round2(mean(func(t TeamMetrics) float64 { return t.CornersPerGame })),
				OffsidesPerGame:     round2(mean(func(t TeamMetrics) float64 { return t.OffsidesPerGame })),
				TouchesInBoxPerGame: round2(mean(func(t TeamMetrics) float64 { return t.TouchesInBoxPerGame })),
			},
			Percentages: LeagueAverageAttackingPercentages{
				ShotAccuracy:   round3(meanPtr(func(t TeamMetrics) *float64 { return t.ShotAccuracy })),
				GoalEfficiency: round3(meanPtr(func(t TeamMetrics) *float64 { return t.GoalEfficiency })),
				ConversionRate: round3(meanPtr(func(t TeamMetrics) *float64 { return t.ConversionRate })),
			},
		},
		Defensive: LeagueAverageDefensive{
			Raw: LeagueAverageDefensiveRaw{
				Fouls:           roundWhole(mean(func(t TeamMetrics) float64 { return t.Fouls })),
				GoalkeeperSaves: roundWhole(mean(func(t TeamMetrics) float64 { return t.GoalkeeperSaves })),
			},
			Normalized: DefensiveNormalized{
				FoulsPerGame:         round2(mean(func(t TeamMetrics) float64 { return t.FoulsPerGame })),
				SavesPerGame:         round2(mean(func(t TeamMetrics) float64 { return t.SavesPerGame })),
				YellowsPerGame:       round2(mean(func(t TeamMetrics) float64 { return t.YellowsPerGame })),
				ClearancesPerGame:    round2(mean(func(t TeamMetrics) float64 { return t.ClearancesPerGame })),
				InterceptionsPerGame: round2(mean(func(t TeamMetrics) float64 { return t.InterceptionsPerGame })),
				TacklesPerGame:       round2(mean(func(t TeamMetrics) float64 { return t.TacklesPerGame })),
			},
			Percentages: DefensivePercentages{
				TackleSuccessRate: round3(meanPtr(func(t TeamMetrics) *float64 { return t.TackleSuccessRate })),
			},
		},
		Passing: LeagueAveragePassing{
			Raw: LeagueAveragePassingRaw{
				PassesAttempted: roundWhole(mean(func(t TeamMetrics) float64 { return t.PassesAttempted })),
				PassesCompleted: roundWhole(mean(func(t TeamMetrics) float64 { return t.PassesCompleted })),
			},
			Normalized: PassingNormalized{
				PassesPerGame:           round2(mean(func(t TeamMetrics) float64 { return t.PassesPerGame })),
				PassesCompletedPerGame:  round2(mean(func(t TeamMetrics) float64 { return t.PassesCompletedPerGame })),
				FinalThirdPassesPerGame: round2(mean(func(t TeamMetrics) float64 { return t.FinalThirdPassesPerGame })),
				CrossesPerGame:          round2(mean(func(t TeamMetrics) float64 { return t.CrossesPerGame })),
			},
			Percentages: PassingPercentages{
				PassAccuracy:           round3(meanPtr(func(t TeamMetrics) *float64 { return t.PassAccuracy })),
				FinalThirdPassAccuracy: round3(meanPtr(func(t TeamMetrics) *float64 { return t.FinalThirdPassAccuracy })),
				CrossAccuracy:          round3(meanPtr(func(t TeamMetrics) *float64 { return t.CrossAccuracy })),
			},
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func roundWhole(v float64) float64 {
	return math.Round(v)
}
