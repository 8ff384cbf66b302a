package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-insights/internal/domain/teamstats"
	"github.com/sourcegraph/conc/pool"
)

type TeamStatisticsResult struct {
	Teams          []teamstats.TeamStatistics
	LeagueAverages []teamstats.LeagueAverage
}

type TeamStatsService struct {
	statsRepo teamstats.Repository
}

func NewTeamStatsService(statsRepo teamstats.Repository) *TeamStatsService {
	return &TeamStatsService{statsRepo: statsRepo}
}

// GetTeamStatistics returns the per-team aggregates for the selection
// plus one league-average benchmark per league the selected teams play
// in. An empty team or season selection short-circuits to an empty
// result without touching the store.
//
// The two queries are independent, so they run concurrently and the
// first error cancels the other.
func (s *TeamStatsService) GetTeamStatistics(ctx context.Context, filter teamstats.Filter) (TeamStatisticsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.GetTeamStatistics")
	defer span.End()

	for _, teamID := range filter.TeamIDs {
		if teamID <= 0 {
			return TeamStatisticsResult{}, fmt.Errorf("%w: team ids must be greater than zero", ErrInvalidInput)
		}
	}

	result := TeamStatisticsResult{
		Teams:          []teamstats.TeamStatistics{},
		LeagueAverages: []teamstats.LeagueAverage{},
	}
	if filter.Empty() {
		return result, nil
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.statsRepo.ListTeamStatistics(ctx, filter)
		if err != nil {
			return fmt.Errorf("list team statistics: %w", err)
		}
		result.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		averages, err := s.statsRepo.ListLeagueAverages(ctx, filter)
		if err != nil {
			return fmt.Errorf("list league averages: %w", err)
		}
		result.LeagueAverages = averages
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamStatisticsResult{}, err
	}

	if result.Teams == nil {
		result.Teams = []teamstats.TeamStatistics{}
	}
	if result.LeagueAverages == nil {
		result.LeagueAverages = []teamstats.LeagueAverage{}
	}

	return result, nil
}
