package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/api/middleware"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	createReservation "github.com/m04kA/SMC-PoolService/internal/usecase/create_reservation"
)

const (
	msgUnauthorized       = "требуется заголовок X-User-ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgClassNotFound      = "класс не найден"
	msgLaneNotFound       = "дорожка не найдена"
	msgClassFull          = "в классе нет свободных мест"
	msgLaneUnavailable    = "выбранная дорожка недоступна"
	msgNoLaneAvailable    = "нет свободной дорожки для занятия"
	msgTooLateToBook      = "слишком поздно для бронирования этого класса"
)

type Handler struct {
	useCase   CreateReservationUseCase
	validator *validator.Validator
	logger    Logger
}

func NewHandler(useCase CreateReservationUseCase, v *validator.Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: v,
		logger:    logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrClassNotFound):
			h.logger.Warn("POST /reservations - Class not found: class_id=%s", req.ClassID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, createReservation.ErrLaneNotFound):
			handlers.RespondNotFound(w, msgLaneNotFound)

		case errors.Is(err, createReservation.ErrClassFull):
			h.logger.Warn("POST /reservations - Class is full: class_id=%s", req.ClassID)
			handlers.RespondConflict(w, msgClassFull)

		case errors.Is(err, createReservation.ErrLaneUnavailable):
			handlers.RespondConflict(w, msgLaneUnavailable)

		case errors.Is(err, createReservation.ErrNoLaneAvailable):
			handlers.RespondConflict(w, msgNoLaneAvailable)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooLateToBook)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, class_id=%s, error=%v",
				userID, req.ClassID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, class_id=%s, lane=%d",
		resp.ID, resp.ClassID, resp.LaneNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
