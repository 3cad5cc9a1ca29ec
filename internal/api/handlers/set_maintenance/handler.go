package set_maintenance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes"
)

const (
	msgInvalidLaneNumber = "некорректный номер дорожки"
	msgNotFound          = "дорожка не найдена"
	msgLaneOccupied      = "на дорожке есть пловцы, обслуживание невозможно"
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

// Handle PUT /api/v1/lanes/{laneNumber}/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	laneNumber, err := handlers.PathInt(r, "laneNumber")
	if err != nil {
		h.logger.Warn("PUT /lanes/{laneNumber}/maintenance - Invalid lane number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaneNumber)
		return
	}

	lane, err := h.service.SetMaintenance(r.Context(), laneNumber)
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lanes.ErrLaneOccupied):
			h.logger.Warn("PUT /lanes/{laneNumber}/maintenance - Lane occupied: lane=%d", laneNumber)
			handlers.RespondConflict(w, msgLaneOccupied)

		default:
			h.logger.Error("PUT /lanes/{laneNumber}/maintenance - Failed for lane=%d: %v", laneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /lanes/{laneNumber}/maintenance - Lane in maintenance: lane=%d", laneNumber)
	handlers.RespondJSON(w, http.StatusOK, lane)
}
