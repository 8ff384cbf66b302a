package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/soccer-insights/internal/domain/league"
	"github.com/riskibarqy/soccer-insights/internal/domain/season"
	"github.com/riskibarqy/soccer-insights/internal/domain/team"
)

func TestLeagueService_ListLeagues(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepo{byID: map[int64]league.League{
		47: {ID: 47, Name: "Premier League", Country: "England"},
		53: {ID: 53, Name: "La Liga", Country: "Spain"},
	}}
	service := NewLeagueService(leagueRepo, &stubSeasonRepo{}, &stubTeamRepo{})

	got, err := service.ListLeagues(context.Background())
	if err != nil {
		t.Fatalf("ListLeagues error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(got))
	}
}

func TestLeagueService_ListSeasonsByLeague_InvalidID(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(&stubLeagueRepo{}, &stubSeasonRepo{}, &stubTeamRepo{})

	for _, leagueID := range []int64{0, -5} {
		_, err := service.ListSeasonsByLeague(context.Background(), leagueID)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("league id %d: expected ErrInvalidInput, got %v", leagueID, err)
		}
	}
}

func TestLeagueService_ListSeasonsByLeague_UnknownLeague(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(&stubLeagueRepo{}, &stubSeasonRepo{}, &stubTeamRepo{})

	_, err := service.ListSeasonsByLeague(context.Background(), 47)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_ListTeams(t *testing.T) {
	t.Parallel()

	teamRepo := &stubTeamRepo{teams: []team.Team{
		{ID: 8456, Name: "Man City", FullName: "Manchester City"},
		{ID: 10260, Name: "Man Utd", FullName: "Manchester United"},
	}}
	service := NewLeagueService(&stubLeagueRepo{}, &stubSeasonRepo{}, teamRepo)

	got, err := service.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 8456 {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

type stubLeagueRepo struct {
	byID map[int64]league.League
}

func (s *stubLeagueRepo) List(_ context.Context) ([]league.League, error) {
	out := make([]league.League, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubLeagueRepo) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	item, ok := s.byID[leagueID]
	return item, ok, nil
}

type stubSeasonRepo struct {
	seasons []season.Season
}

func (s *stubSeasonRepo) ListByLeague(_ context.Context, leagueID int64) ([]season.Season, error) {
	out := make([]season.Season, 0, len(s.seasons))
	for _, item := range s.seasons {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubTeamRepo struct {
	teams []team.Team
}

func (s *stubTeamRepo) List(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}
