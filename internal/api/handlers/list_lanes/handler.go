package list_lanes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

const (
	msgInvalidStatus = "некорректный статус дорожки"
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

// Handle GET /api/v1/lanes?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListLanesRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListLanes(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrInvalidInput):
			h.logger.Warn("GET /lanes - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /lanes - Failed to list lanes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
