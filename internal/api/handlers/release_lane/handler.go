package release_lane

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

// Handle POST /api/v1/lanes/{laneNumber}/release
// Сбрасывает дорожку полностью: бронирования, класс и обслуживание
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	laneNumber, err := handlers.PathInt(r, "laneNumber")
	if err != nil {
		h.logger.Warn("POST /lanes/{laneNumber}/release - Invalid lane number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaneNumber)
		return
	}

	lane, err := h.service.ReleaseLane(r.Context(), laneNumber)
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /lanes/{laneNumber}/release - Failed to release lane=%d: %v", laneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lanes/{laneNumber}/release - Lane released: lane=%d", laneNumber)
	handlers.RespondJSON(w, http.StatusOK, lane)
}
