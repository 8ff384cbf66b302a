package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/soccer-insights/internal/domain/league"
	"github.com/riskibarqy/soccer-insights/internal/domain/season"
	"github.com/riskibarqy/soccer-insights/internal/domain/team"
)

type LeagueService struct {
	leagueRepo league.Repository
	seasonRepo season.Repository
	teamRepo   team.Repository
}

func NewLeagueService(leagueRepo league.Repository, seasonRepo season.Repository, teamRepo team.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSeasonsByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	seasons, err := s.seasonRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list seasons by league: %w", err)
	}

	return seasons, nil
}

func (s *LeagueService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}
