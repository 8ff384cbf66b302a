package teamstats

import "context"

// Repository computes team statistics from per-match statistic rows.
// Both queries take the same filter and are independent: the
// league-average query derives the target leagues from the selected
// team ids itself, so callers may run the two concurrently.
type Repository interface {
	ListTeamStatistics(ctx context.Context, filter Filter) ([]TeamStatistics, error)
	ListLeagueAverages(ctx context.Context, filter Filter) ([]LeagueAverage, error)
}
