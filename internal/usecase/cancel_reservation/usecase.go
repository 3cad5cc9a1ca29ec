package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/policy"
	"github.com/m04kA/SMC-PoolService/internal/pool"
)

const metricsOperation = "cancel"

// UseCase use case для отмены бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	classRepo       ClassRepository
	lanes           LaneRegistry
	policy          CancellationPolicy
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationRepository,
	classes ClassRepository,
	lanes LaneRegistry,
	cancellationPolicy CancellationPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservations,
		classRepo:       classes,
		lanes:           lanes,
		policy:          cancellationPolicy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены
// Статус бронирования меняется первым: повторная параллельная отмена получит ErrAlreadyCancelled
// и не освободит место на дорожке второй раз
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncReservation(metricsOperation, domain.Category(err))
	}()

	uc.logger.Info("CancelReservation: reservation=%s, user=%s", req.ReservationID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Проверяем владельца
	if reservation.UserID != req.UserID {
		uc.logger.Warn("CancelReservation: user=%s is not the owner of reservation id=%s", req.UserID, reservation.ID)
		return nil, ErrAccessDenied
	}

	// 4. Проверяем правила отмены
	if err := uc.policy.CanCancel(*reservation); err != nil {
		uc.logger.Warn("CancelReservation: policy rejected reservation id=%s: %v", reservation.ID, err)
		return nil, mapPolicyError(err)
	}

	// 5. Переводим бронирование в статус cancelled
	cancelled, err := uc.reservationRepo.Cancel(ctx, reservation.ID, req.Reason, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, reservationRepo.ErrCannotCancel) {
			uc.logger.Warn("CancelReservation: reservation id=%s was cancelled concurrently", reservation.ID)
			return nil, ErrAlreadyCancelled
		}
		uc.logger.Error("CancelReservation: failed to cancel reservation id=%s: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
	}

	// 6. Освобождаем место на дорожке
	// Дорожка могла быть освобождена администратором, тогда бронирования на ней уже нет
	if err := uc.lanes.RemoveReservation(cancelled.LaneNumber, cancelled.ID); err != nil {
		if errors.Is(err, pool.ErrReservationNotInLane) || errors.Is(err, pool.ErrLaneNotFound) {
			uc.logger.Warn("CancelReservation: reservation id=%s no longer on lane=%d", cancelled.ID, cancelled.LaneNumber)
		} else {
			uc.logger.Error("CancelReservation: failed to free lane=%d: %v", cancelled.LaneNumber, err)
		}
	}

	// 7. Освобождаем место в классе
	if _, err := uc.classRepo.DecrementReservations(ctx, cancelled.ClassID); err != nil {
		uc.logger.Error("CancelReservation: failed to update class id=%s: %v", cancelled.ClassID, err)
	}

	uc.logger.Info("CancelReservation: reservation id=%s cancelled", cancelled.ID)

	return &Response{
		ID:                 cancelled.ID,
		ClassID:            cancelled.ClassID,
		LaneNumber:         cancelled.LaneNumber,
		Status:             string(cancelled.Status),
		CancelledAt:        *cancelled.CancelledAt,
		CancellationReason: cancelled.CancellationReason,
	}, nil
}

func mapPolicyError(err error) error {
	switch {
	case errors.Is(err, policy.ErrAlreadyCancelled):
		return ErrAlreadyCancelled
	case errors.Is(err, policy.ErrAlreadyCompleted):
		return ErrAlreadyCompleted
	case errors.Is(err, policy.ErrTooLateToCancel):
		return fmt.Errorf("%w: %v", ErrTooLateToCancel, err)
	default:
		return fmt.Errorf("%w: policy check: %v", ErrInternal, err)
	}
}
