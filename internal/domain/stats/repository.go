package stats

import (
	"context"
)

// StatsRepository aggregates counts over the full table pair.
type StatsRepository interface {
	GetTotals(ctx context.Context) (Totals, error)
}
