package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/soccer-insights/internal/domain/standings"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

const playedMatchesQuery = `
SELECT
    round,
    home_team_id,
    away_team_id,
    home_goals,
    away_goals
FROM matches
WHERE league_id = $1
  AND season_id = ANY($2::int[])
  AND home_goals IS NOT NULL
  AND away_goals IS NOT NULL
ORDER BY round ASC, id ASC`

const standingsTeamsQuery = `
SELECT id, name, full_name, short_name, abbreviation
FROM teams
WHERE id = ANY($1::int[])`

// ListByLeague fetches the played matches for the selected seasons and
// folds them into a table with standings.BuildTable. The round window
// is applied during the fold, not in SQL.
func (r *StandingsRepository) ListByLeague(ctx context.Context, leagueID int64, query standings.Query) ([]standings.Standing, error) {
	var matchRows []standingsMatchModel
	if err := r.db.SelectContext(ctx, &matchRows, playedMatchesQuery, leagueID, pq.Array(query.SeasonIDs)); err != nil {
		return nil, fmt.Errorf("list played matches league=%d: %w", leagueID, err)
	}

	matches := make([]standings.MatchResult, 0, len(matchRows))
	teamIDs := make([]int64, 0, len(matchRows)*2)
	seen := make(map[int64]struct{}, len(matchRows)*2)
	for _, row := range matchRows {
		matches = append(matches, standings.MatchResult{
			Round:      row.Round,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeGoals:  row.HomeGoals,
			AwayGoals:  row.AwayGoals,
		})
		for _, teamID := range []int64{row.HomeTeamID, row.AwayTeamID} {
			if _, ok := seen[teamID]; !ok {
				seen[teamID] = struct{}{}
				teamIDs = append(teamIDs, teamID)
			}
		}
	}

	teams := make(map[int64]standings.TeamInfo, len(teamIDs))
	if len(teamIDs) > 0 {
		var teamRows []standingsTeamModel
		if err := r.db.SelectContext(ctx, &teamRows, standingsTeamsQuery, pq.Array(teamIDs)); err != nil {
			return nil, fmt.Errorf("list standings teams league=%d: %w", leagueID, err)
		}
		for _, row := range teamRows {
			teams[row.ID] = standings.TeamInfo{
				Name:         row.Name,
				FullName:     row.FullName,
				ShortName:    row.ShortName,
				Abbreviation: row.Abbreviation,
			}
		}
	}

	return standings.BuildTable(matches, teams, query), nil
}
