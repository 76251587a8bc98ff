package stats

import (
	"context"
)

// StatsService defines business logic for aggregate statistics
type StatsService interface {
	// GetStats returns employee and record totals plus a per-type
	// count map covering every attendance type, zero-filled.
	GetStats(ctx context.Context) (StatsResponse, error)
}
