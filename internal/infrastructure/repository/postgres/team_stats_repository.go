package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/soccer-insights/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

// Both queries take the same four parameters so the service can issue
// them concurrently from one filter: $1 team ids, $2 season names,
// $3/$4 independently nullable round bounds.
//
// Ratio metrics (shot_accuracy, pass_accuracy, ...) are the mean of
// per-match ratios, not a ratio of summed totals. A match with a zero
// denominator contributes NULL and drops out of the mean.
const teamStatisticsQuery = `
SELECT
    ms.team_id,
    t.name AS team_name,
    t.full_name AS team_full_name,
    t.abbreviation AS team_abbreviation,
    l.name AS league_name,
    COUNT(*) AS matches_played,

    SUM(CASE WHEN ms.goals_for > ms.goals_against THEN 1 ELSE 0 END) AS wins,
    SUM(CASE WHEN ms.goals_for = ms.goals_against THEN 1 ELSE 0 END) AS draws,
    SUM(CASE WHEN ms.goals_for < ms.goals_against THEN 1 ELSE 0 END) AS losses,
    SUM(CASE
        WHEN ms.goals_for > ms.goals_against THEN 3
        WHEN ms.goals_for = ms.goals_against THEN 1
        ELSE 0
    END) AS points,
    SUM(ms.goals_for) AS goals_for,
    SUM(ms.goals_against) AS goals_against,
    SUM(ms.goals_for) - SUM(ms.goals_against) AS goal_difference,
    SUM(CASE WHEN ms.goals_against = 0 THEN 1 ELSE 0 END) AS clean_sheets,
    SUM(CASE WHEN ms.goals_for = 0 THEN 1 ELSE 0 END) AS failed_to_score,

    ROUND(AVG(CASE
        WHEN ms.goals_for > ms.goals_against THEN 3
        WHEN ms.goals_for = ms.goals_against THEN 1
        ELSE 0
    END), 2) AS points_per_game,
    ROUND(AVG(ms.goals_for), 2) AS goals_per_game,
    ROUND(AVG(ms.goals_against), 2) AS conceded_per_game,
    ROUND(AVG(CASE WHEN ms.goals_for > ms.goals_against THEN 1 ELSE 0 END), 3) AS win_rate,
    ROUND(AVG(CASE WHEN ms.goals_for = ms.goals_against THEN 1 ELSE 0 END), 3) AS draw_rate,
    ROUND(AVG(CASE WHEN ms.goals_for < ms.goals_against THEN 1 ELSE 0 END), 3) AS loss_rate,
    ROUND(AVG(ms.possession)::numeric, 3) AS avg_possession,

    SUM(ms.shots) AS shots,
    SUM(ms.shots_on_goal) AS shots_on_goal,
    SUM(ms.shots_off_goal) AS shots_off_goal,
    ROUND(SUM(ms.xg)::numeric, 2) AS xg,
    SUM(ms.corner_kicks) AS corner_kicks,
    SUM(ms.offsides) AS offsides,
    SUM(ms.blocked_shots) AS blocked_shots,
    SUM(ms.big_chances) AS big_chances,
    SUM(ms.shots_inside_box) AS shots_inside_box,
    SUM(ms.shots_outside_box) AS shots_outside_box,
    SUM(ms.hit_woodwork) AS hit_woodwork,
    SUM(ms.free_kicks) AS free_kicks,
    SUM(ms.throw_ins) AS throw_ins,
    SUM(ms.touches_in_opposition_box) AS touches_in_opposition_box,

    ROUND(AVG(ms.shots_on_goal::decimal / NULLIF(ms.shots, 0)), 3) AS shot_accuracy,
    ROUND(AVG(ms.goals_for::decimal / NULLIF(ms.shots_on_goal, 0)), 3) AS goal_efficiency,
    ROUND(AVG(ms.goals_for::decimal / NULLIF(ms.shots, 0)), 3) AS conversion_rate,
    ROUND(AVG(ms.goals_for - ms.xg)::numeric, 3) AS xg_difference,
    ROUND(AVG(ms.goals_for::decimal / NULLIF(ms.xg, 0))::numeric, 3) AS xg_efficiency,

    ROUND(AVG(ms.shots), 2) AS shots_per_game,
    ROUND(AVG(ms.shots_on_goal), 2) AS shots_on_goal_per_game,
    ROUND(AVG(ms.xg)::numeric, 3) AS xg_per_game,
    ROUND(AVG(ms.big_chances), 2) AS big_chances_per_game,
    ROUND(AVG(ms.corner_kicks), 2) AS corners_per_game,
    ROUND(AVG(ms.offsides), 2) AS offsides_per_game,
    ROUND(AVG(ms.touches_in_opposition_box), 2) AS touches_in_box_per_game,

    SUM(ms.fouls) AS fouls,
    SUM(ms.goalkeeper_saves) AS goalkeeper_saves,
    SUM(ms.yellow_cards) AS yellow_cards,
    SUM(ms.red_cards) AS red_cards,
    SUM(ms.clearances) AS clearances,
    SUM(ms.interceptions) AS interceptions,
    SUM(ms.tackles_attempted) AS tackles_attempted,
    SUM(ms.tackles_won) AS tackles_won,

    ROUND(AVG(ms.tackles_won::decimal / NULLIF(ms.tackles_attempted, 0)), 3) AS tackle_success_rate,

    ROUND(AVG(ms.fouls), 2) AS fouls_per_game,
    ROUND(AVG(ms.goalkeeper_saves), 2) AS saves_per_game,
    ROUND(AVG(ms.yellow_cards), 2) AS yellows_per_game,
    ROUND(AVG(ms.clearances), 2) AS clearances_per_game,
    ROUND(AVG(ms.interceptions), 2) AS interceptions_per_game,
    ROUND(AVG(ms.tackles_attempted), 2) AS tackles_per_game,

    SUM(ms.passes_attempted) AS passes_attempted,
    SUM(ms.passes_completed) AS passes_completed,
    SUM(ms.final_third_passes_attempted) AS final_third_passes_attempted,
    SUM(ms.final_third_passes_completed) AS final_third_passes_completed,
    SUM(ms.crosses_attempted) AS crosses_attempted,
    SUM(ms.crosses_completed) AS crosses_completed,

    ROUND(AVG(ms.passes_completed::decimal / NULLIF(ms.passes_attempted, 0)), 3) AS pass_accuracy,
    ROUND(AVG(ms.final_third_passes_completed::decimal / NULLIF(ms.final_third_passes_attempted, 0)), 3) AS final_third_pass_accuracy,
    ROUND(AVG(ms.crosses_completed::decimal / NULLIF(ms.crosses_attempted, 0)), 3) AS cross_accuracy,

    ROUND(AVG(ms.passes_attempted), 2) AS passes_per_game,
    ROUND(AVG(ms.passes_completed), 2) AS passes_completed_per_game,
    ROUND(AVG(ms.final_third_passes_attempted), 2) AS final_third_passes_per_game,
    ROUND(AVG(ms.crosses_attempted), 2) AS crosses_per_game
FROM match_statistics ms
JOIN matches m ON ms.match_id = m.id
JOIN seasons s ON m.season_id = s.id
JOIN leagues l ON m.league_id = l.id
JOIN teams t ON ms.team_id = t.id
WHERE ms.team_id = ANY($1::int[])
  AND s.name = ANY($2::text[])
  AND ($3::int IS NULL OR m.round >= $3)
  AND ($4::int IS NULL OR m.round <= $4)
GROUP BY ms.team_id, t.name, t.full_name, t.abbreviation, l.name
ORDER BY ms.team_id ASC`

// The league set is derived inside the query from the selected team
// ids, so this rollup never depends on the per-team result and the two
// queries stay independent. The query stops at level one, the per-team
// aggregates; teamstats.AverageByLeague does the cross-team averaging
// so every team weighs the same regardless of how many qualifying
// matches it played.
const teamMetricsQuery = `
SELECT
    l.name AS league_name,
    ms.team_id,

    SUM(CASE WHEN ms.goals_for > ms.goals_against THEN 1 ELSE 0 END) AS wins,
    SUM(CASE WHEN ms.goals_for = ms.goals_against THEN 1 ELSE 0 END) AS draws,
    SUM(CASE WHEN ms.goals_for < ms.goals_against THEN 1 ELSE 0 END) AS losses,
    SUM(CASE
        WHEN ms.goals_for > ms.goals_against THEN 3
        WHEN ms.goals_for = ms.goals_against THEN 1
        ELSE 0
    END) AS points,
    SUM(ms.goals_for) AS goals_for,
    SUM(ms.goals_against) AS goals_against,
    SUM(ms.goals_for) - SUM(ms.goals_against) AS goal_difference,

    AVG(CASE
        WHEN ms.goals_for > ms.goals_against THEN 3
        WHEN ms.goals_for = ms.goals_against THEN 1
        ELSE 0
    END) AS points_per_game,
    AVG(ms.goals_for) AS goals_per_game,
    AVG(ms.goals_against) AS conceded_per_game,
    AVG(CASE WHEN ms.goals_for > ms.goals_against THEN 1 ELSE 0 END) AS win_rate,
    AVG(CASE WHEN ms.goals_for = ms.goals_against THEN 1 ELSE 0 END) AS draw_rate,
    AVG(CASE WHEN ms.goals_for < ms.goals_against THEN 1 ELSE 0 END) AS loss_rate,
    AVG(ms.possession) AS avg_possession,

    SUM(ms.shots) AS shots,
    SUM(ms.shots_on_goal) AS shots_on_goal,
    SUM(ms.xg) AS xg,
    SUM(ms.corner_kicks) AS corner_kicks,
    AVG(ms.shots) AS shots_per_game,
    AVG(ms.shots_on_goal) AS shots_on_goal_per_game,
    AVG(ms.xg) AS xg_per_game,
    AVG(ms.big_chances) AS big_chances_per_game,
    AVG(ms.corner_kicks) AS corners_per_game,
    AVG(ms.offsides) AS offsides_per_game,
    AVG(ms.touches_in_opposition_box) AS touches_in_box_per_game,
    AVG(ms.shots_on_goal::decimal / NULLIF(ms.shots, 0)) AS shot_accuracy,
    AVG(ms.goals_for::decimal / NULLIF(ms.shots_on_goal, 0)) AS goal_efficiency,
    AVG(ms.goals_for::decimal / NULLIF(ms.shots, 0)) AS conversion_rate,

    SUM(ms.fouls) AS fouls,
    SUM(ms.goalkeeper_saves) AS goalkeeper_saves,
    AVG(ms.fouls) AS fouls_per_game,
    AVG(ms.goalkeeper_saves) AS saves_per_game,
    AVG(ms.yellow_cards) AS yellows_per_game,
    AVG(ms.clearances) AS clearances_per_game,
    AVG(ms.interceptions) AS interceptions_per_game,
    AVG(ms.tackles_attempted) AS tackles_per_game,
    AVG(ms.tackles_won::decimal / NULLIF(ms.tackles_attempted, 0)) AS tackle_success_rate,

    SUM(ms.passes_attempted) AS passes_attempted,
    SUM(ms.passes_completed) AS passes_completed,
    AVG(ms.passes_attempted) AS passes_per_game,
    AVG(ms.passes_completed) AS passes_completed_per_game,
    AVG(ms.final_third_passes_attempted) AS final_third_passes_per_game,
    AVG(ms.crosses_attempted) AS crosses_per_game,
    AVG(ms.passes_completed::decimal / NULLIF(ms.passes_attempted, 0)) AS pass_accuracy,
    AVG(ms.final_third_passes_completed::decimal / NULLIF(ms.final_third_passes_attempted, 0)) AS final_third_pass_accuracy,
    AVG(ms.crosses_completed::decimal / NULLIF(ms.crosses_attempted, 0)) AS cross_accuracy
FROM match_statistics ms
JOIN matches m ON ms.match_id = m.id
JOIN seasons s ON m.season_id = s.id
JOIN leagues l ON m.league_id = l.id
WHERE m.league_id IN (
    SELECT DISTINCT m2.league_id
    FROM match_statistics ms2
    JOIN matches m2 ON ms2.match_id = m2.id
    JOIN seasons s2 ON m2.season_id = s2.id
    WHERE ms2.team_id = ANY($1::int[])
      AND s2.name = ANY($2::text[])
      AND ($3::int IS NULL OR m2.round >= $3)
      AND ($4::int IS NULL OR m2.round <= $4)
)
  AND s.name = ANY($2::text[])
  AND ($3::int IS NULL OR m.round >= $3)
  AND ($4::int IS NULL OR m.round <= $4)
GROUP BY l.name, ms.team_id
ORDER BY l.name ASC, ms.team_id ASC`

func (r *TeamStatsRepository) ListTeamStatistics(ctx context.Context, filter teamstats.Filter) ([]teamstats.TeamStatistics, error) {
	var rows []teamStatsTableModel
	err := r.db.SelectContext(ctx, &rows, teamStatisticsQuery,
		pq.Array(filter.TeamIDs), pq.Array(filter.Seasons), filter.RoundStart, filter.RoundEnd)
	if err != nil {
		return nil, fmt.Errorf("list team statistics: %w", err)
	}

	out := make([]teamstats.TeamStatistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTeamStatistics(row))
	}

	return out, nil
}

func (r *TeamStatsRepository) ListLeagueAverages(ctx context.Context, filter teamstats.Filter) ([]teamstats.LeagueAverage, error) {
	var rows []teamMetricsTableModel
	err := r.db.SelectContext(ctx, &rows, teamMetricsQuery,
		pq.Array(filter.TeamIDs), pq.Array(filter.Seasons), filter.RoundStart, filter.RoundEnd)
	if err != nil {
		return nil, fmt.Errorf("list league team metrics: %w", err)
	}

	metrics := make([]teamstats.TeamMetrics, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, mapTeamMetrics(row))
	}

	return teamstats.AverageByLeague(metrics), nil
}

func mapTeamStatistics(row teamStatsTableModel) teamstats.TeamStatistics {
	return teamstats.TeamStatistics{
		TeamID:           row.TeamID,
		TeamName:         row.TeamName,
		TeamFullName:     row.TeamFullName,
		TeamAbbreviation: row.TeamAbbreviation,
		LeagueName:       row.LeagueName,
		MatchesPlayed:    row.MatchesPlayed,
		General: teamstats.General{
			Raw: teamstats.GeneralRaw{
				Wins:           nullInt64(row.Wins),
				Draws:          nullInt64(row.Draws),
				Losses:         nullInt64(row.Losses),
				Points:         nullInt64(row.Points),
				GoalsFor:       nullInt64(row.GoalsFor),
				GoalsAgainst:   nullInt64(row.GoalsAgainst),
				GoalDifference: nullInt64(row.GoalDifference),
				CleanSheets:    nullInt64(row.CleanSheets),
				FailedToScore:  nullInt64(row.FailedToScore),
			},
			Normalized: teamstats.GeneralNormalized{
				PointsPerGame:   nullFloat64(row.PointsPerGame),
				GoalsPerGame:    nullFloat64(row.GoalsPerGame),
				ConcededPerGame: nullFloat64(row.ConcededPerGame),
				WinRate:         nullFloat64(row.WinRate),
				DrawRate:        nullFloat64(row.DrawRate),
				LossRate:        nullFloat64(row.LossRate),
				AvgPossession:   nullFloat64(row.AvgPossession),
			},
		},
		Attacking: teamstats.Attacking{
			Raw: teamstats.AttackingRaw{
				Shots:                  nullInt64(row.Shots),
				ShotsOnGoal:            nullInt64(row.ShotsOnGoal),
				ShotsOffGoal:           nullInt64(row.ShotsOffGoal),
				XG:                     nullFloat64(row.XG),
				CornerKicks:            nullInt64(row.CornerKicks),
				Offsides:               nullInt64(row.Offsides),
				BlockedShots:           nullInt64(row.BlockedShots),
				BigChances:             nullInt64(row.BigChances),
				ShotsInsideBox:         nullInt64(row.ShotsInsideBox),
				ShotsOutsideBox:        nullInt64(row.ShotsOutsideBox),
				HitWoodwork:            nullInt64(row.HitWoodwork),
				FreeKicks:              nullInt64(row.FreeKicks),
				ThrowIns:               nullInt64(row.ThrowIns),
				TouchesInOppositionBox: nullInt64(row.TouchesInOppositionBox),
			},
			Normalized: teamstats.AttackingNormalized{
				ShotsPerGame:        nullFloat64(row.ShotsPerGame),
				ShotsOnGoalPerGame:  nullFloat64(row.ShotsOnGoalPerGame),
				XGPerGame:           nullFloat64(row.XGPerGame),
				BigChancesPerGame:   nullFloat64(row.BigChancesPerGame),
				CornersPerGame:      nullFloat64(row.CornersPerGame),
				OffsidesPerGame:     nullFloat64(row.OffsidesPerGame),
				TouchesInBoxPerGame: nullFloat64(row.TouchesInBoxPerGame),
			},
			Percentages: teamstats.AttackingPercentages{
				ShotAccuracy:   nullFloat64(row.ShotAccuracy),
				GoalEfficiency: nullFloat64(row.GoalEfficiency),
				ConversionRate: nullFloat64(row.ConversionRate),
				XGDifference:   nullFloat64(row.XGDifference),
				XGEfficiency:   nullFloat64(row.XGEfficiency),
			},
		},
		Defensive: teamstats.Defensive{
			Raw: teamstats.DefensiveRaw{
				Fouls:            nullInt64(row.Fouls),
				GoalkeeperSaves:  nullInt64(row.GoalkeeperSaves),
				YellowCards:      nullInt64(row.YellowCards),
				RedCards:         nullInt64(row.RedCards),
				Clearances:       nullInt64(row.Clearances),
				Interceptions:    nullInt64(row.Interceptions),
				TacklesAttempted: nullInt64(row.TacklesAttempted),
				TacklesWon:       nullInt64(row.TacklesWon),
			},
			Normalized: teamstats.DefensiveNormalized{
				FoulsPerGame:         nullFloat64(row.FoulsPerGame),
				SavesPerGame:         nullFloat64(row.SavesPerGame),
				YellowsPerGame:       nullFloat64(row.YellowsPerGame),
				ClearancesPerGame:    nullFloat64(row.ClearancesPerGame),
				InterceptionsPerGame: nullFloat64(row.InterceptionsPerGame),
				TacklesPerGame:       nullFloat64(row.TacklesPerGame),
			},
			Percentages: teamstats.DefensivePercentages{
				TackleSuccessRate: nullFloat64(row.TackleSuccessRate),
			},
		},
		Passing: teamstats.Passing{
			Raw: teamstats.PassingRaw{
				PassesAttempted:           nullInt64(row.PassesAttempted),
				PassesCompleted:           nullInt64(row.PassesCompleted),
				FinalThirdPassesAttempted: nullInt64(row.FinalThirdPassesAttempted),
				FinalThirdPassesCompleted: nullInt64(row.FinalThirdPassesCompleted),
				CrossesAttempted:          nullInt64(row.CrossesAttempted),
				CrossesCompleted:          nullInt64(row.CrossesCompleted),
			},
			Normalized: teamstats.PassingNormalized{
				PassesPerGame:           nullFloat64(row.PassesPerGame),
				PassesCompletedPerGame:  nullFloat64(row.PassesCompletedPerGame),
				FinalThirdPassesPerGame: nullFloat64(row.FinalThirdPassesPerGame),
				CrossesPerGame:          nullFloat64(row.CrossesPerGame),
			},
			Percentages: teamstats.PassingPercentages{
				PassAccuracy:           nullFloat64(row.PassAccuracy),
				FinalThirdPassAccuracy: nullFloat64(row.FinalThirdPassAccuracy),
				CrossAccuracy:          nullFloat64(row.CrossAccuracy),
			},
		},
	}
}

func mapTeamMetrics(row teamMetricsTableModel) teamstats.TeamMetrics {
	return teamstats.TeamMetrics{
		LeagueName: row.LeagueName,
		TeamID:     row.TeamID,

		Wins:           nullFloat64(row.Wins),
		Draws:          nullFloat64(row.Draws),
		Losses:         nullFloat64(row.Losses),
		Points:         nullFloat64(row.Points),
		GoalsFor:       nullFloat64(row.GoalsFor),
		GoalsAgainst:   nullFloat64(row.GoalsAgainst),
		GoalDifference: nullFloat64(row.GoalDifference),

		PointsPerGame:   nullFloat64(row.PointsPerGame),
		GoalsPerGame:    nullFloat64(row.GoalsPerGame),
		ConcededPerGame: nullFloat64(row.ConcededPerGame),
		WinRate:         nullFloat64(row.WinRate),
		DrawRate:        nullFloat64(row.DrawRate),
		LossRate:        nullFloat64(row.LossRate),
		AvgPossession:   nullFloat64Ptr(row.AvgPossession),

		Shots:       nullFloat64(row.Shots),
		ShotsOnGoal: nullFloat64(row.ShotsOnGoal),
		XG:          nullFloat64(row.XG),
		CornerKicks: nullFloat64(row.CornerKicks),

		ShotsPerGame:        nullFloat64(row.ShotsPerGame),
		ShotsOnGoalPerGame:  nullFloat64(row.ShotsOnGoalPerGame),
		XGPerGame:           nullFloat64(row.XGPerGame),
		BigChancesPerGame:   nullFloat64(row.BigChancesPerGame),
		CornersPerGame:      nullFloat64(row.CornersPerGame),
		OffsidesPerGame:     nullFloat64(row.OffsidesPerGame),
		TouchesInBoxPerGame: nullFloat64(row.TouchesInBoxPerGame),

		ShotAccuracy:   nullFloat64Ptr(row.ShotAccuracy),
		GoalEfficiency: nullFloat64Ptr(row.GoalEfficiency),
		ConversionRate: nullFloat64Ptr(row.ConversionRate),

		Fouls:           nullFloat64(row.Fouls),
		GoalkeeperSaves: nullFloat64(row.GoalkeeperSaves),

		FoulsPerGame:         nullFloat64(row.FoulsPerGame),
		SavesPerGame:         nullFloat64(row.SavesPerGame),
		YellowsPerGame:       nullFloat64(row.YellowsPerGame),
		ClearancesPerGame:    nullFloat64(row.ClearancesPerGame),
		InterceptionsPerGame: nullFloat64(row.InterceptionsPerGame),
		TacklesPerGame:       nullFloat64(row.TacklesPerGame),

		TackleSuccessRate: nullFloat64Ptr(row.TackleSuccessRate),

		PassesAttempted: nullFloat64(row.PassesAttempted),
		PassesCompleted: nullFloat64(row.PassesCompleted),

		PassesPerGame:           nullFloat64(row.PassesPerGame),
		PassesCompletedPerGame:  nullFloat64(row.PassesCompletedPerGame),
		FinalThirdPassesPerGame: nullFloat64(row.FinalThirdPassesPerGame),
		CrossesPerGame:          nullFloat64(row.CrossesPerGame),

		PassAccuracy:           nullFloat64Ptr(row.PassAccuracy),
		FinalThirdPassAccuracy: nullFloat64Ptr(row.FinalThirdPassAccuracy),
		CrossAccuracy:          nullFloat64Ptr(row.CrossAccuracy),
	}
}
