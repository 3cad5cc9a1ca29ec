package get_occupancy_stats

import (
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
)

type Handler struct {
	service LaneService
	logger  Logger
}

func NewHandler(service LaneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lanes/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /lanes/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
