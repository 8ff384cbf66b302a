package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/soccer-insights/internal/domain/season"
	qb "github.com/riskibarqy/soccer-insights/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID int64) ([]season.Season, error) {
	query, args, err := qb.Select("id", "name", "year", "status", "league_id").From("seasons").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons league=%d: %w", leagueID, err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Season{
			ID:       row.ID,
			Name:     row.Name,
			Year:     row.Year,
			Status:   row.Status,
			LeagueID: row.LeagueID,
		})
	}

	return out, nil
}
