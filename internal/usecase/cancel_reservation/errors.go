package cancel_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("cancel_reservation: reservation %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = fmt.Errorf("cancel_reservation: already cancelled: %w", domain.ErrPolicyViolation)

	// ErrAlreadyCompleted возвращается при отмене прошедшего занятия
	ErrAlreadyCompleted = fmt.Errorf("cancel_reservation: already completed: %w", domain.ErrPolicyViolation)

	// ErrTooLateToCancel возвращается, когда окно отмены закрыто
	ErrTooLateToCancel = fmt.Errorf("cancel_reservation: too late to cancel: %w", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
