package check_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes"
)

const (
	msgInvalidLaneNumber = "некорректный номер дорожки"
	msgInvalidDuration   = "длительность должна быть целым числом минут"
	msgInvalidInput      = "некорректные параметры проверки"
	msgNotFound          = "дорожка не найдена"
)

type Handler struct {
	service   LaneService
	validator *validator.Validator
	logger    Logger
}

func NewHandler(service LaneService, v *validator.Validator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

// Handle GET /api/v1/lanes/{laneNumber}/conflicts?start=09:30&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	laneNumber, err := handlers.PathInt(r, "laneNumber")
	if err != nil {
		h.logger.Warn("GET /lanes/{laneNumber}/conflicts - Invalid lane number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLaneNumber)
		return
	}

	query := ConflictQuery{Start: r.URL.Query().Get("start")}
	if raw := r.URL.Query().Get("duration"); raw != "" {
		query.Duration, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	if err := h.validator.Validate(query); err != nil {
		h.logger.Warn("GET /lanes/{laneNumber}/conflicts - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.CheckConflict(r.Context(), query.ToServiceRequest(laneNumber))
	if err != nil {
		switch {
		case errors.Is(err, lanes.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, lanes.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /lanes/{laneNumber}/conflicts - Failed for lane=%d: %v", laneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
