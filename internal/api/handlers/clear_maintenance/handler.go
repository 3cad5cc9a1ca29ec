package clear_maintenance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes"
)

const (
	msgInvalidLaneNumber = "некорректный номер дорожки"
	msgNotFound          = "дорожка не найдена"
	msgNotInMaintenance  = "дорожка не находится на обслуживании"
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

// Handle DELETE /api/v1/lanes/{laneNumber}/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	laneNumber, err := handlers.PathInt(r, "laneNumber")
	if err != nil {
		h.logger.Warn("DELETE /lanes/{laneNumber}/maintenance - Invalid lane number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaneNumber)
		return
	}

	lane, err := h.service.ClearMaintenance(r.Context(), laneNumber)
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lanes.ErrLaneNotInMaintenance):
			handlers.RespondConflict(w, msgNotInMaintenance)

		default:
			h.logger.Error("DELETE /lanes/{laneNumber}/maintenance - Failed for lane=%d: %v", laneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /lanes/{laneNumber}/maintenance - Lane back in service: lane=%d", laneNumber)
	handlers.RespondJSON(w, http.StatusOK, lane)
}
