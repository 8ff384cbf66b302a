package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64) ([]Season, error)
}
