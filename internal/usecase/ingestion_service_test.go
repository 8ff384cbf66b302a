package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/soccer-insights/internal/domain/ingest"
)

func TestIngestionService_Ingest_DisabledFeed(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(&stubFeedProvider{}, &stubIngestWriter{}, stubIDGen{}, false)

	_, err := service.Ingest(context.Background(), IngestionInput{SeasonIDs: []int64{21}})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestIngestionService_Ingest_Validation(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(&stubFeedProvider{}, &stubIngestWriter{}, stubIDGen{}, true)
	ctx := context.Background()

	if _, err := service.Ingest(ctx, IngestionInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty seasons: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Ingest(ctx, IngestionInput{SeasonIDs: []int64{21, 0}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero season id: expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestionService_Ingest_WritesAndRefreshesRollups(t *testing.T) {
	t.Parallel()

	homeGoals := 2
	awayGoals := 1
	provider := &stubFeedProvider{
		leagues: []ingest.LeagueRecord{{ID: 47, Name: "Premier League", Country: "England"}},
		bundles: map[int64]SeasonBundle{
			21: {
				Season: ingest.SeasonRecord{ID: 21, LeagueID: 47, Name: "2023_2024", Year: 2023},
				Teams: []ingest.TeamRecord{
					{ID: 8456, Name: "Man City"},
					{ID: 8650, Name: "Liverpool"},
				},
				Matches: []ingest.MatchRecord{
					{ID: 900, LeagueID: 47, SeasonID: 21, Round: 1, HomeTeamID: 8456, AwayTeamID: 8650, HomeGoals: &homeGoals, AwayGoals: &awayGoals},
				},
				Statistics: []ingest.MatchStatisticRecord{
					{MatchID: 900, TeamID: 8456, GoalsFor: 2, GoalsAgainst: 1},
					{MatchID: 900, TeamID: 8650, GoalsFor: 1, GoalsAgainst: 2},
				},
			},
		},
	}
	writer := &stubIngestWriter{}
	service := NewIngestionService(provider, writer, stubIDGen{}, true)

	result, err := service.Ingest(context.Background(), IngestionInput{SeasonIDs: []int64{21}, MaxWorkers: 2})
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if result.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if result.TaskCount != 1 || result.SuccessCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.WorkerCount != 1 {
		t.Fatalf("worker count should be capped at the task count, got %d", result.WorkerCount)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].Records != 5 {
		t.Fatalf("unexpected task rows: %+v", result.Tasks)
	}
	if writer.leagues != 1 || writer.seasons != 1 || writer.teams != 2 || writer.matches != 1 || writer.statistics != 2 {
		t.Fatalf("unexpected writes: %+v", writer)
	}
	if len(writer.refreshedSeasons) != 1 || writer.refreshedSeasons[0] != 21 {
		t.Fatalf("expected rollup refresh for season 21, got %v", writer.refreshedSeasons)
	}
}

func TestIngestionService_Ingest_DryRunSkipsWrites(t *testing.T) {
	t.Parallel()

	provider := &stubFeedProvider{
		leagues: []ingest.LeagueRecord{{ID: 47, Name: "Premier League"}},
		bundles: map[int64]SeasonBundle{
			21: {
				Season: ingest.SeasonRecord{ID: 21, LeagueID: 47, Name: "2023_2024"},
				Teams:  []ingest.TeamRecord{{ID: 8456, Name: "Man City"}},
			},
		},
	}
	writer := &stubIngestWriter{}
	service := NewIngestionService(provider, writer, stubIDGen{}, true)

	result, err := service.Ingest(context.Background(), IngestionInput{SeasonIDs: []int64{21}, DryRun: true})
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if result.SuccessCount != 1 || result.Tasks[0].Records != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if writer.leagues != 0 || writer.seasons != 0 || writer.teams != 0 {
		t.Fatalf("dry run must not write, got %+v", writer)
	}
	if len(writer.refreshedSeasons) != 0 {
		t.Fatalf("dry run must not refresh rollups, got %v", writer.refreshedSeasons)
	}
}

func TestIngestionService_Ingest_CountsFailedAndSkippedSeasons(t *testing.T) {
	t.Parallel()

	provider := &stubFeedProvider{
		leagues: []ingest.LeagueRecord{{ID: 47, Name: "Premier League"}},
		bundles: map[int64]SeasonBundle{
			21: {
				Season: ingest.SeasonRecord{ID: 21, LeagueID: 47},
				Teams:  []ingest.TeamRecord{{ID: 8456, Name: "Man City"}},
			},
			22: {}, // empty bundle, skipped
		},
		bundleErrs: map[int64]error{
			23: errors.New("feed timeout"),
		},
	}
	writer := &stubIngestWriter{}
	service := NewIngestionService(provider, writer, stubIDGen{}, true)

	result, err := service.Ingest(context.Background(), IngestionInput{SeasonIDs: []int64{23, 22, 21}, MaxWorkers: 3})
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if result.SuccessCount != 1 || result.FailedCount != 1 || result.SkippedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Tasks[0].SeasonID != 21 || result.Tasks[1].SeasonID != 22 || result.Tasks[2].SeasonID != 23 {
		t.Fatalf("task rows should be sorted by season id: %+v", result.Tasks)
	}
	if result.Tasks[2].Status != "failed" || result.Tasks[2].Message == "" {
		t.Fatalf("expected failure message for season 23: %+v", result.Tasks[2])
	}
	if len(writer.refreshedSeasons) != 3 {
		t.Fatalf("refresh should cover all requested seasons, got %v", writer.refreshedSeasons)
	}
}

func TestNormalizeIngestionWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value     int
		taskCount int
		want      int
	}{
		{value: 0, taskCount: 3, want: 1},
		{value: -1, taskCount: 3, want: 1},
		{value: 2, taskCount: 3, want: 2},
		{value: 8, taskCount: 10, want: 4},
		{value: 4, taskCount: 2, want: 2},
		{value: 3, taskCount: 0, want: 1},
	}
	for _, tc := range cases {
		if got := normalizeIngestionWorkerCount(tc.value, tc.taskCount); got != tc.want {
			t.Fatalf("normalizeIngestionWorkerCount(%d, %d) = %d, want %d", tc.value, tc.taskCount, got, tc.want)
		}
	}
}

type stubFeedProvider struct {
	leagues    []ingest.LeagueRecord
	leaguesErr error
	bundles    map[int64]SeasonBundle
	bundleErrs map[int64]error
}

func (s *stubFeedProvider) FetchLeagues(_ context.Context) ([]ingest.LeagueRecord, error) {
	if s.leaguesErr != nil {
		return nil, s.leaguesErr
	}
	out := make([]ingest.LeagueRecord, len(s.leagues))
	copy(out, s.leagues)
	return out, nil
}

func (s *stubFeedProvider) FetchSeasonBundle(_ context.Context, seasonID int64) (SeasonBundle, error) {
	if err := s.bundleErrs[seasonID]; err != nil {
		return SeasonBundle{}, err
	}
	bundle, ok := s.bundles[seasonID]
	if !ok {
		return SeasonBundle{}, fmt.Errorf("unknown season %d", seasonID)
	}
	return bundle, nil
}

type stubIngestWriter struct {
	mu               sync.Mutex
	leagues          int
	seasons          int
	teams            int
	matches          int
	statistics       int
	refreshedSeasons []int64
}

func (s *stubIngestWriter) UpsertLeagues(_ context.Context, items []ingest.LeagueRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues += len(items)
	return nil
}

func (s *stubIngestWriter) UpsertSeasons(_ context.Context, items []ingest.SeasonRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons += len(items)
	return nil
}

func (s *stubIngestWriter) UpsertTeams(_ context.Context, items []ingest.TeamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams += len(items)
	return nil
}

func (s *stubIngestWriter) UpsertMatches(_ context.Context, items []ingest.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches += len(items)
	return nil
}

func (s *stubIngestWriter) UpsertMatchStatistics(_ context.Context, items []ingest.MatchStatisticRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statistics += len(items)
	return nil
}

func (s *stubIngestWriter) RefreshTeamSeasons(_ context.Context, seasonIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshedSeasons = append(s.refreshedSeasons, seasonIDs...)
	return nil
}

type stubIDGen struct{}

func (stubIDGen) NewID() (string, error) {
	return "run-0001", nil
}
