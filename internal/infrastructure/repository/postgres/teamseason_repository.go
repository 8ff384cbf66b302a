package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/soccer-insights/internal/domain/teamseason"
)

type TeamSeasonRepository struct {
	db *sqlx.DB
}

func NewTeamSeasonRepository(db *sqlx.DB) *TeamSeasonRepository {
	return &TeamSeasonRepository{db: db}
}

const membershipsQuery = `
SELECT
    s.id AS season_id,
    s.name AS season_name,
    s.status AS season_status,
    l.name AS league_name,
    l.country,
    ts.team_id,
    t.full_name,
    t.short_name
FROM team_seasons ts
JOIN seasons s ON ts.season_id = s.id
JOIN leagues l ON s.league_id = l.id
JOIN teams t ON ts.team_id = t.id
WHERE ts.team_id = ANY($1::int[])
ORDER BY ts.team_id ASC, s.name ASC`

func (r *TeamSeasonRepository) ListMemberships(ctx context.Context, teamIDs []int64) ([]teamseason.Membership, error) {
	var rows []membershipTableModel
	if err := r.db.SelectContext(ctx, &rows, membershipsQuery, pq.Array(teamIDs)); err != nil {
		return nil, fmt.Errorf("list team season memberships: %w", err)
	}

	out := make([]teamseason.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Membership{
			SeasonID:     row.SeasonID,
			SeasonName:   row.SeasonName,
			SeasonStatus: row.SeasonStatus,
			LeagueName:   row.LeagueName,
			Country:      row.Country,
			TeamID:       row.TeamID,
			FullName:     row.FullName,
			ShortName:    row.ShortName,
		})
	}

	return out, nil
}

// The query reads stored totals only; per-game and percentage fields
// are derived in Go by ProgressionRow.DeriveRates so all percentages
// land on one 0-100 scale.
const progressionQuery = `
SELECT
    t.name AS team_name,
    t.full_name AS team_full_name,
    t.abbreviation AS team_abbreviation,
    ts.id,
    ts.team_id,
    s.name AS season,
    l.name AS league_name,
    ts.matches_played,
    ts.points,
    ts.wins,
    ts.draws,
    ts.losses,
    ts.goals_for,
    ts.goals_against,
    ts.goals_for - ts.goals_against AS goal_difference,
    ts.clean_sheets,
    ts.failed_to_score,
    ts.home_matches,
    ts.away_matches,
    ts.home_wins,
    ts.home_draws,
    ts.home_losses,
    ts.away_wins,
    ts.away_draws,
    ts.away_losses,
    ts.home_goals_for,
    ts.home_goals_against,
    ts.away_goals_for,
    ts.away_goals_against
FROM team_seasons ts
JOIN teams t ON ts.team_id = t.id
JOIN seasons s ON ts.season_id = s.id
JOIN leagues l ON s.league_id = l.id
WHERE ts.team_id = ANY($1::int[])
ORDER BY t.name ASC, s.name ASC`

func (r *TeamSeasonRepository) ListProgression(ctx context.Context, teamIDs []int64) ([]teamseason.ProgressionRow, error) {
	var rows []progressionTableModel
	if err := r.db.SelectContext(ctx, &rows, progressionQuery, pq.Array(teamIDs)); err != nil {
		return nil, fmt.Errorf("list team season progression: %w", err)
	}

	out := make([]teamseason.ProgressionRow, 0, len(rows))
	for _, row := range rows {
		progression := teamseason.ProgressionRow{
			TeamName:         row.TeamName,
			TeamFullName:     row.TeamFullName,
			TeamAbbreviation: row.TeamAbbreviation,
			ID:               row.ID,
			TeamID:           row.TeamID,
			Season:           row.Season,
			LeagueName:       row.LeagueName,

			MatchesPlayed:  row.MatchesPlayed,
			Points:         row.Points,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			CleanSheets:    row.CleanSheets,
			FailedToScore:  row.FailedToScore,

			HomeMatches:      row.HomeMatches,
			AwayMatches:      row.AwayMatches,
			HomeWins:         row.HomeWins,
			HomeDraws:        row.HomeDraws,
			HomeLosses:       row.HomeLosses,
			AwayWins:         row.AwayWins,
			AwayDraws:        row.AwayDraws,
			AwayLosses:       row.AwayLosses,
			HomeGoalsFor:     row.HomeGoalsFor,
			HomeGoalsAgainst: row.HomeGoalsAgainst,
			AwayGoalsFor:     row.AwayGoalsFor,
			AwayGoalsAgainst: row.AwayGoalsAgainst,
		}
		progression.DeriveRates()
		out = append(out, progression)
	}

	return out, nil
}
