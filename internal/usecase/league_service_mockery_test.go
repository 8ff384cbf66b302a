package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/soccer-insights/internal/domain/league"
	"github.com/riskibarqy/soccer-insights/internal/domain/season"
	leaguemock "github.com/riskibarqy/soccer-insights/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListSeasonsByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	seasonRepo := &stubSeasonRepo{seasons: []season.Season{
		{ID: 21, LeagueID: 47, Name: "2023_2024", Year: 2023},
		{ID: 22, LeagueID: 47, Name: "2024_2025", Year: 2024},
	}}

	service := NewLeagueService(leagueRepo, seasonRepo, &stubTeamRepo{})
	leagueID := int64(47)

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID}, true, nil).
		Once()

	got, err := service.ListSeasonsByLeague(ctx, leagueID)
	if err != nil {
		t.Fatalf("list seasons by league: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected season count: got=%d want=%d", len(got), 2)
	}
	if got[0].Name != "2023_2024" {
		t.Fatalf("unexpected season name: got=%s want=%s", got[0].Name, "2023_2024")
	}
}

func TestLeagueService_ListSeasonsByLeague_LeagueNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo, &stubSeasonRepo{}, &stubTeamRepo{})
	leagueID := int64(999)

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListSeasonsByLeague(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
