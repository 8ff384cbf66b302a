package ingest

import "context"

// Repository writes feed records into the store. Upserts are keyed on
// the feed ids, so re-running an ingestion for the same season is safe.
type Repository interface {
	UpsertLeagues(ctx context.Context, items []LeagueRecord) error
	UpsertSeasons(ctx context.Context, items []SeasonRecord) error
	UpsertTeams(ctx context.Context, items []TeamRecord) error
	UpsertMatches(ctx context.Context, items []MatchRecord) error
	UpsertMatchStatistics(ctx context.Context, items []MatchStatisticRecord) error

	// RefreshTeamSeasons rebuilds the pre-materialized season rollups
	// for the given seasons from the matches table.
	RefreshTeamSeasons(ctx context.Context, seasonIDs []int64) error
}
