package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-insights/internal/domain/league"
	"github.com/riskibarqy/soccer-insights/internal/domain/standings"
)

type StandingsInput struct {
	SeasonIDs  []int64
	RoundStart *int
	RoundEnd   *int
}

type StandingsService struct {
	leagueRepo    league.Repository
	standingsRepo standings.Repository
}

func NewStandingsService(leagueRepo league.Repository, standingsRepo standings.Repository) *StandingsService {
	return &StandingsService{
		leagueRepo:    leagueRepo,
		standingsRepo: standingsRepo,
	}
}

// GetStandings builds the league table for the selected seasons. The
// round window only applies when both bounds are present; a lone bound
// is ignored and the full table is returned. An inverted window is
// passed through as-is and matches no rounds.
func (s *StandingsService) GetStandings(ctx context.Context, leagueID int64, input StandingsInput) ([]standings.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetStandings")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}
	if len(input.SeasonIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}
	for _, seasonID := range input.SeasonIDs {
		if seasonID <= 0 {
			return nil, fmt.Errorf("%w: season ids must be greater than zero", ErrInvalidInput)
		}
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	rows, err := s.standingsRepo.ListByLeague(ctx, leagueID, standings.Query{
		SeasonIDs:  input.SeasonIDs,
		RoundStart: input.RoundStart,
		RoundEnd:   input.RoundEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	return rows, nil
}
