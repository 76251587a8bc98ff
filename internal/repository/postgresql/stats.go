package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/stats"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepository{db: db}
}

// GetTotals implements stats.StatsRepository.
func (r *statsRepository) GetTotals(ctx context.Context) (stats.Totals, error) {
	q := GetQuerier(ctx, r.db)

	totals := stats.Totals{ByType: make(map[string]int64)}

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees)          AS total_employees,
			(SELECT COUNT(*) FROM attendance_records) AS total_records
	`
	if err := q.QueryRow(ctx, query).Scan(&totals.TotalEmployees, &totals.TotalRecords); err != nil {
		return stats.Totals{}, fmt.Errorf("failed to get totals: %w", err)
	}

	byTypeQuery := `
		SELECT attendance_type, COUNT(*)
		FROM attendance_records
		GROUP BY attendance_type
	`
	rows, err := q.Query(ctx, byTypeQuery)
	if err != nil {
		return stats.Totals{}, fmt.Errorf("failed to get per-type counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typ string
		var count int64
		if err := rows.Scan(&typ, &count); err != nil {
			return stats.Totals{}, fmt.Errorf("failed to scan per-type count: %w", err)
		}
		totals.ByType[typ] = count
	}
	if err := rows.Err(); err != nil {
		return stats.Totals{}, fmt.Errorf("failed to read per-type counts: %w", err)
	}

	return totals, nil
}
