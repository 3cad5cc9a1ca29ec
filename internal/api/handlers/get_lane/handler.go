package get_lane

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes"
)

const (
	msgInvalidLaneNumber = "некорректный номер дорожки"
	msgNotFound          = "дорожка не найдена"
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

// Handle GET /api/v1/lanes/{laneNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	laneNumber, err := handlers.PathInt(r, "laneNumber")
	if err != nil {
		h.logger.Warn("GET /lanes/{laneNumber} - Invalid lane number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaneNumber)
		return
	}

	lane, err := h.service.GetLane(r.Context(), laneNumber)
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /lanes/{laneNumber} - Failed to get lane=%d: %v", laneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, lane)
}
