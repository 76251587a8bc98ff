package stats

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	stats.StatsRepository
}

func NewStatsService(statsRepo stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{StatsRepository: statsRepo}
}

// GetStats implements stats.StatsService.
func (s *StatsServiceImpl) GetStats(ctx context.Context) (stats.StatsResponse, error) {
	totals, err := s.StatsRepository.GetTotals(ctx)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to get stats: %w", err)
	}

	// Zero-fill so every type shows up even with no records.
	byType := make(map[string]int64, len(attendance.Types))
	for _, typ := range attendance.Types {
		byType[typ.String()] = totals.ByType[typ.String()]
	}

	return stats.StatsResponse{
		TotalEmployees:   totals.TotalEmployees,
		TotalRecords:     totals.TotalRecords,
		AttendanceByType: byType,
	}, nil
}
