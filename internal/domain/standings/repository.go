package standings

import "context"

// Repository computes standings from row-level match data. The store is
// read-only from this subsystem's point of view.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64, query Query) ([]Standing, error)
}
