package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/soccer-insights/internal/domain/ingest"
	"github.com/riskibarqy/soccer-insights/internal/platform/id"
)

// SeasonBundle is everything the feed returns for one season.
type SeasonBundle struct {
	Season     ingest.SeasonRecord
	Teams      []ingest.TeamRecord
	Matches    []ingest.MatchRecord
	Statistics []ingest.MatchStatisticRecord
}

// FeedProvider fetches reference data and season bundles from the
// upstream statistics feed.
type FeedProvider interface {
	FetchLeagues(ctx context.Context) ([]ingest.LeagueRecord, error)
	FetchSeasonBundle(ctx context.Context, seasonID int64) (SeasonBundle, error)
}

type IngestionInput struct {
	SeasonIDs  []int64
	MaxWorkers int
	// DryRun skips DB writes and returns computed counts only.
	DryRun bool
}

type IngestionResult struct {
	RunID        string                `json:"run_id"`
	TaskCount    int                   `json:"task_count"`
	SuccessCount int                   `json:"success_count"`
	FailedCount  int                   `json:"failed_count"`
	SkippedCount int                   `json:"skipped_count"`
	WorkerCount  int                   `json:"worker_count"`
	Tasks        []IngestionTaskResult `json:"tasks"`
}

type IngestionTaskResult struct {
	SeasonID   int64  `json:"season_id"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	ingestionStatusSuccess = "success"
	ingestionStatusFailed  = "failed"
	ingestionStatusSkipped = "skipped"
)

type IngestionService struct {
	provider FeedProvider
	writer   ingest.Repository
	idGen    id.Generator
	enabled  bool
}

func NewIngestionService(provider FeedProvider, writer ingest.Repository, idGen id.Generator, enabled bool) *IngestionService {
	return &IngestionService{
		provider: provider,
		writer:   writer,
		idGen:    idGen,
		enabled:  enabled,
	}
}

// Ingest pulls the requested seasons from the feed and upserts them
// into the store, one worker task per season. Season rollups are
// rebuilt once at the end, after every season task has finished.
func (s *IngestionService) Ingest(ctx context.Context, input IngestionInput) (IngestionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Ingest")
	defer span.End()

	if !s.enabled {
		return IngestionResult{}, fmt.Errorf("%w: feed ingestion is disabled (FEED_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil || s.writer == nil {
		return IngestionResult{}, fmt.Errorf("%w: feed ingestion is not fully configured", ErrDependencyUnavailable)
	}

	seasonIDs, err := normalizeIngestionSeasonIDs(input.SeasonIDs)
	if err != nil {
		return IngestionResult{}, err
	}

	runID, err := s.idGen.NewID()
	if err != nil {
		return IngestionResult{}, fmt.Errorf("generate ingestion run id: %w", err)
	}

	leagues, err := s.provider.FetchLeagues(ctx)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("%w: fetch leagues: %v", ErrDependencyUnavailable, err)
	}
	if !input.DryRun {
		if err := s.writer.UpsertLeagues(ctx, leagues); err != nil {
			return IngestionResult{}, fmt.Errorf("upsert leagues: %w", err)
		}
	}

	workerCount := normalizeIngestionWorkerCount(input.MaxWorkers, len(seasonIDs))
	result := IngestionResult{
		RunID:       runID,
		TaskCount:   len(seasonIDs),
		WorkerCount: workerCount,
		Tasks:       make([]IngestionTaskResult, 0, len(seasonIDs)),
	}

	results := make(chan IngestionTaskResult, len(seasonIDs))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, seasonID := range seasonIDs {
		seasonID := seasonID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := IngestionTaskResult{SeasonID: seasonID}

			records, status, message := s.runSeasonTask(ctx, seasonID, input.DryRun)
			row.Records = records
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case ingestionStatusSuccess:
				successCount.Add(1)
			case ingestionStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return IngestionResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].SeasonID < result.Tasks[j].SeasonID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	if !input.DryRun && result.SuccessCount > 0 {
		if err := s.writer.RefreshTeamSeasons(ctx, seasonIDs); err != nil {
			return IngestionResult{}, fmt.Errorf("refresh team seasons: %w", err)
		}
	}

	return result, nil
}

func (s *IngestionService) runSeasonTask(ctx context.Context, seasonID int64, dryRun bool) (int, string, string) {
	bundle, err := s.provider.FetchSeasonBundle(ctx, seasonID)
	if err != nil {
		return 0, ingestionStatusFailed, fmt.Sprintf("fetch season bundle season_id=%d: %v", seasonID, err)
	}

	total := len(bundle.Teams) + len(bundle.Matches) + len(bundle.Statistics)
	if total == 0 {
		return 0, ingestionStatusSkipped, "no records returned by feed"
	}

	if dryRun {
		return total, ingestionStatusSuccess, ""
	}

	if err := s.writer.UpsertSeasons(ctx, []ingest.SeasonRecord{bundle.Season}); err != nil {
		return 0, ingestionStatusFailed, fmt.Sprintf("upsert season season_id=%d: %v", seasonID, err)
	}
	if err := s.writer.UpsertTeams(ctx, bundle.Teams); err != nil {
		return 0, ingestionStatusFailed, fmt.Sprintf("upsert teams season_id=%d: %v", seasonID, err)
	}
	if err := s.writer.UpsertMatches(ctx, bundle.Matches); err != nil {
		return 0, ingestionStatusFailed, fmt.Sprintf("upsert matches season_id=%d: %v", seasonID, err)
	}
	if err := s.writer.UpsertMatchStatistics(ctx, bundle.Statistics); err != nil {
		return 0, ingestionStatusFailed, fmt.Sprintf("upsert match statistics season_id=%d: %v", seasonID, err)
	}

	return total, ingestionStatusSuccess, ""
}

func normalizeIngestionSeasonIDs(seasonIDs []int64) ([]int64, error) {
	if len(seasonIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(seasonIDs))
	out := make([]int64, 0, len(seasonIDs))
	for _, seasonID := range seasonIDs {
		if seasonID <= 0 {
			return nil, fmt.Errorf("%w: season ids must be greater than zero", ErrInvalidInput)
		}
		if _, exists := seen[seasonID]; exists {
			continue
		}
		seen[seasonID] = struct{}{}
		out = append(out, seasonID)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func normalizeIngestionWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > 4 {
		value = 4
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
