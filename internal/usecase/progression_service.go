package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/soccer-insights/internal/domain/teamseason"
)

type ProgressionService struct {
	teamSeasonRepo teamseason.Repository
}

func NewProgressionService(teamSeasonRepo teamseason.Repository) *ProgressionService {
	return &ProgressionService{teamSeasonRepo: teamSeasonRepo}
}

// ListProgression returns the season-by-season summaries for the
// requested teams, ordered by team name and then season.
func (s *ProgressionService) ListProgression(ctx context.Context, teamIDs []int64) ([]teamseason.ProgressionRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressionService.ListProgression")
	defer span.End()

	teamIDs, err := normalizeTeamIDs(teamIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.teamSeasonRepo.ListProgression(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list progression: %w", err)
	}

	return rows, nil
}

// CommonSeasons intersects the season sets of the requested teams and
// returns the qualifying season names sorted ascending: a season
// qualifies only when every team has a rollup for it. The intersection
// is computed here rather than in SQL so one membership query serves
// any number of teams. An empty team list intersects to an empty list.
func (s *ProgressionService) CommonSeasons(ctx context.Context, teamIDs []int64) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressionService.CommonSeasons")
	defer span.End()

	if len(teamIDs) == 0 {
		return []string{}, nil
	}

	teamIDs, err := normalizeTeamIDs(teamIDs)
	if err != nil {
		return nil, err
	}

	memberships, err := s.teamSeasonRepo.ListMemberships(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list team season memberships: %w", err)
	}

	type seasonEntry struct {
		name  string
		teams map[int64]struct{}
	}
	entries := make(map[int64]*seasonEntry)
	for _, m := range memberships {
		entry, ok := entries[m.SeasonID]
		if !ok {
			entry = &seasonEntry{
				name:  m.SeasonName,
				teams: make(map[int64]struct{}, len(teamIDs)),
			}
			entries[m.SeasonID] = entry
		}
		entry.teams[m.TeamID] = struct{}{}
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if len(entry.teams) == len(teamIDs) {
			names[entry.name] = struct{}{}
		}
	}

	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)

	return out, nil
}

func normalizeTeamIDs(teamIDs []int64) ([]int64, error) {
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(teamIDs))
	out := make([]int64, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		if teamID <= 0 {
			return nil, fmt.Errorf("%w: team ids must be greater than zero", ErrInvalidInput)
		}
		if _, exists := seen[teamID]; exists {
			continue
		}
		seen[teamID] = struct{}{}
		out = append(out, teamID)
	}

	return out, nil
}
