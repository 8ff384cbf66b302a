package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/soccer-insights/internal/domain/teamstats"
)

func TestTeamStatsService_GetTeamStatistics_InvalidTeamID(t *testing.T) {
	t.Parallel()

	repo := &stubTeamStatsRepo{}
	service := NewTeamStatsService(repo)

	_, err := service.GetTeamStatistics(context.Background(), teamstats.Filter{
		TeamIDs: []int64{8456, -1},
		Seasons: []string{"2023_2024"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.calls() != 0 {
		t.Fatalf("repository should not be queried on invalid input")
	}
}

func TestTeamStatsService_GetTeamStatistics_EmptyFilterShortCircuits(t *testing.T) {
	t.Parallel()

	repo := &stubTeamStatsRepo{}
	service := NewTeamStatsService(repo)

	for _, filter := range []teamstats.Filter{
		{},
		{TeamIDs: []int64{8456}},
		{Seasons: []string{"2023_2024"}},
	} {
		got, err := service.GetTeamStatistics(context.Background(), filter)
		if err != nil {
			t.Fatalf("GetTeamStatistics error: %v", err)
		}
		if got.Teams == nil || got.LeagueAverages == nil {
			t.Fatalf("expected empty slices, got %+v", got)
		}
		if len(got.Teams) != 0 || len(got.LeagueAverages) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	}
	if repo.calls() != 0 {
		t.Fatalf("repository should not be queried for an empty filter")
	}
}

func TestTeamStatsService_GetTeamStatistics_MergesBothQueries(t *testing.T) {
	t.Parallel()

	repo := &stubTeamStatsRepo{
		teams: []teamstats.TeamStatistics{
			{TeamID: 8456, TeamName: "Man City", MatchesPlayed: 38},
		},
		averages: []teamstats.LeagueAverage{
			{LeagueName: "Premier League"},
		},
	}
	service := NewTeamStatsService(repo)

	got, err := service.GetTeamStatistics(context.Background(), teamstats.Filter{
		TeamIDs: []int64{8456},
		Seasons: []string{"2023_2024"},
	})
	if err != nil {
		t.Fatalf("GetTeamStatistics error: %v", err)
	}
	if len(got.Teams) != 1 || got.Teams[0].TeamID != 8456 {
		t.Fatalf("unexpected teams: %+v", got.Teams)
	}
	if len(got.LeagueAverages) != 1 || got.LeagueAverages[0].LeagueName != "Premier League" {
		t.Fatalf("unexpected league averages: %+v", got.LeagueAverages)
	}
	if repo.calls() != 2 {
		t.Fatalf("expected both queries to run, got %d calls", repo.calls())
	}
}

func TestTeamStatsService_GetTeamStatistics_FirstErrorWins(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	repo := &stubTeamStatsRepo{averagesErr: repoErr}
	service := NewTeamStatsService(repo)

	_, err := service.GetTeamStatistics(context.Background(), teamstats.Filter{
		TeamIDs: []int64{8456},
		Seasons: []string{"2023_2024"},
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}

type stubTeamStatsRepo struct {
	mu          sync.Mutex
	callCount   int
	teams       []teamstats.TeamStatistics
	teamsErr    error
	averages    []teamstats.LeagueAverage
	averagesErr error
}

func (s *stubTeamStatsRepo) ListTeamStatistics(_ context.Context, _ teamstats.Filter) ([]teamstats.TeamStatistics, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()
	if s.teamsErr != nil {
		return nil, s.teamsErr
	}
	out := make([]teamstats.TeamStatistics, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *stubTeamStatsRepo) ListLeagueAverages(_ context.Context, _ teamstats.Filter) ([]teamstats.LeagueAverage, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()
	if s.averagesErr != nil {
		return nil, s.averagesErr
	}
	out := make([]teamstats.LeagueAverage, len(s.averages))
	copy(out, s.averages)
	return out, nil
}

func (s *stubTeamStatsRepo) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}
