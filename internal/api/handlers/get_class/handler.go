package get_class

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/service/classes"
)

const (
	msgInvalidClassID = "некорректный ID класса"
	msgNotFound       = "класс не найден"
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

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]
	if classID == "" {
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	class, err := h.service.GetClass(r.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrClassNotFound):
			h.logger.Warn("GET /classes/{classId} - Class not found: class_id=%s", classID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /classes/{classId} - Failed to get class_id=%s: %v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, class)
}
