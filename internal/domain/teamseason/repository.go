package teamseason

import "context"

// Repository reads the pre-materialized team_seasons rollups.
type Repository interface {
	ListMemberships(ctx context.Context, teamIDs []int64) ([]Membership, error)
	ListProgression(ctx context.Context, teamIDs []int64) ([]ProgressionRow, error)
}
