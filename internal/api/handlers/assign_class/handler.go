package assign_class

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	assignClass "github.com/m04kA/SMC-PoolService/internal/usecase/assign_class"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "класс не может быть назначен с такими параметрами"
	msgClassNotFound      = "класс не найден"
	msgLaneNotFound       = "дорожка не найдена"
	msgNoLaneAvailable    = "нет свободной дорожки"
	msgLaneUnavailable    = "дорожка не может принять класс"
	msgTimeConflict       = "время класса пересекается с занятием на дорожке"
	msgAlreadyAssigned    = "класс уже назначен на другую дорожку"
)

type Handler struct {
	useCase   AssignClassUseCase
	validator *validator.Validator
	logger    Logger
}

func NewHandler(useCase AssignClassUseCase, v *validator.Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: v,
		logger:    logger,
	}
}

// Handle POST /api/v1/classes/{classId}/assign-lane
// Тело запроса необязательно: без номера дорожки выбирается первая пустая
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	var req AssignLaneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /classes/{classId}/assign-lane - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logger.Warn("POST /classes/{classId}/assign-lane - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(classID))
	if err != nil {
		switch {
		case errors.Is(err, assignClass.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, assignClass.ErrClassNotFound):
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, assignClass.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgLaneNotFound)

		case errors.Is(err, assignClass.ErrNoLaneAvailable):
			h.logger.Warn("POST /classes/{classId}/assign-lane - No empty lane for class_id=%s", classID)
			handlers.RespondConflict(w, msgNoLaneAvailable)

		case errors.Is(err, assignClass.ErrLaneUnavailable):
			handlers.RespondConflict(w, msgLaneUnavailable)

		case errors.Is(err, assignClass.ErrTimeConflict):
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, assignClass.ErrAlreadyAssigned):
			handlers.RespondConflict(w, msgAlreadyAssigned)

		default:
			h.logger.Error("POST /classes/{classId}/assign-lane - Failed for class_id=%s: %v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/{classId}/assign-lane - Class assigned: class_id=%s, lane=%d", classID, resp.LaneNumber)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
