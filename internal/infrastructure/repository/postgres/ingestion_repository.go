package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/soccer-insights/internal/domain/ingest"
)

type IngestionRepository struct {
	db *sqlx.DB
}

func NewIngestionRepository(db *sqlx.DB) *IngestionRepository {
	return &IngestionRepository{db: db}
}

func (r *IngestionRepository) UpsertLeagues(ctx context.Context, items []ingest.LeagueRecord) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (id, name, country)
VALUES (:id, :name, :country)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    country = EXCLUDED.country`, map[string]any{
				"id":      item.ID,
				"name":    item.Name,
				"country": item.Country,
			})
			if err != nil {
				return fmt.Errorf("bind upsert league %d query: %w", item.ID, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("upsert league %d: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *IngestionRepository) UpsertSeasons(ctx context.Context, items []ingest.SeasonRecord) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO seasons (id, league_id, name, year, status)
VALUES (:id, :league_id, :name, :year, :status)
ON CONFLICT (id) DO UPDATE SET
    league_id = EXCLUDED.league_id,
    name = EXCLUDED.name,
    year = EXCLUDED.year,
    status = EXCLUDED.status`, map[string]any{
				"id":        item.ID,
				"league_id": item.LeagueID,
				"name":      item.Name,
				"year":      item.Year,
				"status":    item.Status,
			})
			if err != nil {
				return fmt.Errorf("bind upsert season %d query: %w", item.ID, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("upsert season %d: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *IngestionRepository) UpsertTeams(ctx context.Context, items []ingest.TeamRecord) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, short_name, full_name, abbreviation)
VALUES (:id, :name, :short_name, :full_name, :abbreviation)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    short_name = EXCLUDED.short_name,
    full_name = EXCLUDED.full_name,
    abbreviation = EXCLUDED.abbreviation`, map[string]any{
				"id":           item.ID,
				"name":         item.Name,
				"short_name":   item.ShortName,
				"full_name":    item.FullName,
				"abbreviation": item.Abbreviation,
			})
			if err != nil {
				return fmt.Errorf("bind upsert team %d query: %w", item.ID, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("upsert team %d: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *IngestionRepository) UpsertMatches(ctx context.Context, items []ingest.MatchRecord) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (id, league_id, season_id, round, home_team_id, away_team_id, home_goals, away_goals, played_at)
VALUES (:id, :league_id, :season_id, :round, :home_team_id, :away_team_id, :home_goals, :away_goals, :played_at)
ON CONFLICT (id) DO UPDATE SET
    league_id = EXCLUDED.league_id,
    season_id = EXCLUDED.season_id,
    round = EXCLUDED.round,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_goals = EXCLUDED.home_goals,
    away_goals = EXCLUDED.away_goals,
    played_at = EXCLUDED.played_at`, map[string]any{
				"id":           item.ID,
				"league_id":    item.LeagueID,
				"season_id":    item.SeasonID,
				"round":        item.Round,
				"home_team_id": item.HomeTeamID,
				"away_team_id": item.AwayTeamID,
				"home_goals":   item.HomeGoals,
				"away_goals":   item.AwayGoals,
				"played_at":    item.PlayedAt.UTC(),
			})
			if err != nil {
				return fmt.Errorf("bind upsert match %d query: %w", item.ID, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("upsert match %d: %w", item.ID, err)
			}
		}
		return nil
	})
}

func (r *IngestionRepository) UpsertMatchStatistics(ctx context.Context, items []ingest.MatchStatisticRecord) error {
	if len(items) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			sqlQuery, args, err := sqlx.Named(`
INSERT INTO match_statistics (
    match_id, team_id, goals_for, goals_against, possession,
    shots, shots_on_goal, shots_off_goal, xg, corner_kicks, offsides,
    blocked_shots, big_chances, shots_inside_box, shots_outside_box,
    hit_woodwork, free_kicks, throw_ins, touches_in_opposition_box,
    fouls, goalkeeper_saves, yellow_cards, red_cards, clearances,
    interceptions, tackles_attempted, tackles_won,
    passes_attempted, passes_completed, final_third_passes_attempted,
    final_third_passes_completed, crosses_attempted, crosses_completed
) VALUES (
    :match_id, :team_id, :goals_for, :goals_against, :possession,
    :shots, :shots_on_goal, :shots_off_goal, :xg, :corner_kicks, :offsides,
    :blocked_shots, :big_chances, :shots_inside_box, :shots_outside_box,
    :hit_woodwork, :free_kicks, :throw_ins, :touches_in_opposition_box,
    :fouls, :goalkeeper_saves, :yellow_cards, :red_cards, :clearances,
    :interceptions, :tackles_attempted, :tackles_won,
    :passes_attempted, :passes_completed, :final_third_passes_attempted,
    :final_third_passes_completed, :crosses_attempted, :crosses_completed
)
ON CONFLICT (match_id, team_id) DO UPDATE SET
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    possession = EXCLUDED.possession,
    shots = EXCLUDED.shots,
    shots_on_goal = EXCLUDED.shots_on_goal,
    shots_off_goal = EXCLUDED.shots_off_goal,
    xg = EXCLUDED.xg,
    corner_kicks = EXCLUDED.corner_kicks,
    offsides = EXCLUDED.offsides,
    blocked_shots = EXCLUDED.blocked_shots,
    big_chances = EXCLUDED.big_chances,
    shots_inside_box = EXCLUDED.shots_inside_box,
    shots_outside_box = EXCLUDED.shots_outside_box,
    hit_woodwork = EXCLUDED.hit_woodwork,
    free_kicks = EXCLUDED.free_kicks,
    throw_ins = EXCLUDED.throw_ins,
    touches_in_opposition_box = EXCLUDED.touches_in_opposition_box,
    fouls = EXCLUDED.fouls,
    goalkeeper_saves = EXCLUDED.goalkeeper_saves,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    clearances = EXCLUDED.clearances,
    interceptions = EXCLUDED.interceptions,
    tackles_attempted = EXCLUDED.tackles_attempted,
    tackles_won = EXCLUDED.tackles_won,
    passes_attempted = EXCLUDED.passes_attempted,
    passes_completed = EXCLUDED.passes_completed,
    final_third_passes_attempted = EXCLUDED.final_third_passes_attempted,
    final_third_passes_completed = EXCLUDED.final_third_passes_completed,
    crosses_attempted = EXCLUDED.crosses_attempted,
    crosses_completed = EXCLUDED.crosses_completed`, map[string]any{
				"match_id":                     item.MatchID,
				"team_id":                      item.TeamID,
				"goals_for":                    item.GoalsFor,
				"goals_against":                item.GoalsAgainst,
				"possession":                   item.Possession,
				"shots":                        item.Shots,
				"shots_on_goal":                item.ShotsOnGoal,
				"shots_off_goal":               item.ShotsOffGoal,
				"xg":                           item.XG,
				"corner_kicks":                 item.CornerKicks,
				"offsides":                     item.Offsides,
				"blocked_shots":                item.BlockedShots,
				"big_chances":                  item.BigChances,
				"shots_inside_box":             item.ShotsInsideBox,
				"shots_outside_box":            item.ShotsOutsideBox,
				"hit_woodwork":                 item.HitWoodwork,
				"free_kicks":                   item.FreeKicks,
				"throw_ins":                    item.ThrowIns,
				"touches_in_opposition_box":    item.TouchesInOppositionBox,
				"fouls":                        item.Fouls,
				"goalkeeper_saves":             item.GoalkeeperSaves,
				"yellow_cards":                 item.YellowCards,
				"red_cards":                    item.RedCards,
				"clearances":                   item.Clearances,
				"interceptions":                item.Interceptions,
				"tackles_attempted":            item.TacklesAttempted,
				"tackles_won":                  item.TacklesWon,
				"passes_attempted":             item.PassesAttempted,
				"passes_completed":             item.PassesCompleted,
				"final_third_passes_attempted": item.FinalThirdPassesAttempted,
				"final_third_passes_completed": item.FinalThirdPassesCompleted,
				"crosses_attempted":            item.CrossesAttempted,
				"crosses_completed":            item.CrossesCompleted,
			})
			if err != nil {
				return fmt.Errorf("bind upsert match statistic match=%d team=%d query: %w", item.MatchID, item.TeamID, err)
			}
			sqlQuery = tx.Rebind(sqlQuery)
			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("upsert match statistic match=%d team=%d: %w", item.MatchID, item.TeamID, err)
			}
		}
		return nil
	})
}

// RefreshTeamSeasons rebuilds the season rollups straight from the
// matches table, one row per (team, season) with at least one played
// leg. Both legs of each match contribute through a UNION ALL so the
// home and away splits fall out of one aggregation.
func (r *IngestionRepository) RefreshTeamSeasons(ctx context.Context, seasonIDs []int64) error {
	if len(seasonIDs) == 0 {
		return nil
	}

	const refreshQuery = `
INSERT INTO team_seasons (
    team_id, season_id, matches_played, points, wins, draws, losses,
    goals_for, goals_against, clean_sheets, failed_to_score,
    home_matches, away_matches, home_wins, home_draws, home_losses,
    away_wins, away_draws, away_losses,
    home_goals_for, home_goals_against, away_goals_for, away_goals_against
)
SELECT
    legs.team_id,
    legs.season_id,
    COUNT(*) AS matches_played,
    SUM(CASE
        WHEN legs.goals_for > legs.goals_against THEN 3
        WHEN legs.goals_for = legs.goals_against THEN 1
        ELSE 0
    END) AS points,
    SUM(CASE WHEN legs.goals_for > legs.goals_against THEN 1 ELSE 0 END) AS wins,
    SUM(CASE WHEN legs.goals_for = legs.goals_against THEN 1 ELSE 0 END) AS draws,
    SUM(CASE WHEN legs.goals_for < legs.goals_against THEN 1 ELSE 0 END) AS losses,
    SUM(legs.goals_for) AS goals_for,
    SUM(legs.goals_against) AS goals_against,
    SUM(CASE WHEN legs.goals_against = 0 THEN 1 ELSE 0 END) AS clean_sheets,
    SUM(CASE WHEN legs.goals_for = 0 THEN 1 ELSE 0 END) AS failed_to_score,
    SUM(CASE WHEN legs.is_home THEN 1 ELSE 0 END) AS home_matches,
    SUM(CASE WHEN legs.is_home THEN 0 ELSE 1 END) AS away_matches,
    SUM(CASE WHEN legs.is_home AND legs.goals_for > legs.goals_against THEN 1 ELSE 0 END) AS home_wins,
    SUM(CASE WHEN legs.is_home AND legs.goals_for = legs.goals_against THEN 1 ELSE 0 END) AS home_draws,
    SUM(CASE WHEN legs.is_home AND legs.goals_for < legs.goals_against THEN 1 ELSE 0 END) AS home_losses,
    SUM(CASE WHEN NOT legs.is_home AND legs.goals_for > legs.goals_against THEN 1 ELSE 0 END) AS away_wins,
    SUM(CASE WHEN NOT legs.is_home AND legs.goals_for = legs.goals_against THEN 1 ELSE 0 END) AS away_draws,
    SUM(CASE WHEN NOT legs.is_home AND legs.goals_for < legs.goals_against THEN 1 ELSE 0 END) AS away_losses,
    SUM(CASE WHEN legs.is_home THEN legs.goals_for ELSE 0 END) AS home_goals_for,
    SUM(CASE WHEN legs.is_home THEN legs.goals_against ELSE 0 END) AS home_goals_against,
    SUM(CASE WHEN NOT legs.is_home THEN legs.goals_for ELSE 0 END) AS away_goals_for,
    SUM(CASE WHEN NOT legs.is_home THEN legs.goals_against ELSE 0 END) AS away_goals_against
FROM (
    SELECT season_id, home_team_id AS team_id, home_goals AS goals_for, away_goals AS goals_against, TRUE AS is_home
    FROM matches
    WHERE season_id = ANY($1::int[]) AND home_goals IS NOT NULL AND away_goals IS NOT NULL
    UNION ALL
    SELECT season_id, away_team_id AS team_id, away_goals AS goals_for, home_goals AS goals_against, FALSE AS is_home
    FROM matches
    WHERE season_id = ANY($1::int[]) AND home_goals IS NOT NULL AND away_goals IS NOT NULL
) legs
GROUP BY legs.team_id, legs.season_id
ON CONFLICT (team_id, season_id) DO UPDATE SET
    matches_played = EXCLUDED.matches_played,
    points = EXCLUDED.points,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    clean_sheets = EXCLUDED.clean_sheets,
    failed_to_score = EXCLUDED.failed_to_score,
    home_matches = EXCLUDED.home_matches,
    away_matches = EXCLUDED.away_matches,
    home_wins = EXCLUDED.home_wins,
    home_draws = EXCLUDED.home_draws,
    home_losses = EXCLUDED.home_losses,
    away_wins = EXCLUDED.away_wins,
    away_draws = EXCLUDED.away_draws,
    away_losses = EXCLUDED.away_losses,
    home_goals_for = EXCLUDED.home_goals_for,
    home_goals_against = EXCLUDED.home_goals_against,
    away_goals_for = EXCLUDED.away_goals_for,
    away_goals_against = EXCLUDED.away_goals_against`

	if _, err := r.db.ExecContext(ctx, refreshQuery, pq.Array(seasonIDs)); err != nil {
		return fmt.Errorf("refresh team seasons: %w", err)
	}

	return nil
}

func (r *IngestionRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingestion tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingestion tx: %w", err)
	}

	return nil
}
