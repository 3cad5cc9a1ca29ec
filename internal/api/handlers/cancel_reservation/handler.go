package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
	"github.com/m04kA/SMC-PoolService/internal/api/middleware"
	"github.com/m04kA/SMC-PoolService/internal/api/validator"
	cancelReservation "github.com/m04kA/SMC-PoolService/internal/usecase/cancel_reservation"
)

const (
	msgUnauthorized       = "требуется заголовок X-User-ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отмены"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgAlreadyCompleted   = "занятие уже завершено"
	msgTooLateToCancel    = "слишком поздно для отмены бронирования"
)

type Handler struct {
	useCase   CancelReservationUseCase
	validator *validator.Validator
	logger    Logger
}

func NewHandler(useCase CancelReservationUseCase, v *validator.Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: v,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Тело запроса необязательно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handlers.RespondValidationError(w, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: id=%s, user_id=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrAlreadyCompleted):
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, cancelReservation.ErrTooLateToCancel):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooLateToCancel)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
