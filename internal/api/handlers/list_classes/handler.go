package list_classes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/classes"
	"github.com/m04kA/SMC-PoolService/internal/service/classes/models"
)

const (
	msgInvalidFilter   = "некорректный фильтр классов"
	msgInvalidOnlyOpen = "параметр onlyOpen должен быть true или false"
)

type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes?level=beginner&type=group&onlyOpen=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListClassesRequest{}

	if level := query.Get("level"); level != "" {
		req.Level = &level
	}
	if classType := query.Get("type"); classType != "" {
		req.ClassType = &classType
	}
	if raw := query.Get("onlyOpen"); raw != "" {
		onlyOpen, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /classes - Invalid onlyOpen: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidOnlyOpen)
			return
		}
		req.OnlyOpen = onlyOpen
	}

	result, err := h.service.ListClasses(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrInvalidInput):
			h.logger.Warn("GET /classes - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /classes - Failed to list classes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
