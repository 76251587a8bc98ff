package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/stats"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// Get implements StatsHandler.
func (h *statsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
