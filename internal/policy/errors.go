package policy

import (
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrClassFull возвращается, когда в классе не осталось мест
	ErrClassFull = fmt.Errorf("policy: class is full: %w", domain.ErrCapacityExceeded)

	// ErrLaneUnavailable возвращается, когда выбранная дорожка не может принять еще одного пловца
	ErrLaneUnavailable = fmt.Errorf("policy: lane is unavailable: %w", domain.ErrCapacityExceeded)

	// ErrTooLateToBook возвращается, когда до начала класса меньше минимального времени бронирования
	ErrTooLateToBook = fmt.Errorf("policy: too late to book: %w", domain.ErrPolicyViolation)

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = fmt.Errorf("policy: reservation already cancelled: %w", domain.ErrPolicyViolation)

	// ErrAlreadyCompleted возвращается при отмене прошедшего занятия
	ErrAlreadyCompleted = fmt.Errorf("policy: reservation already completed: %w", domain.ErrPolicyViolation)

	// ErrTooLateToCancel возвращается, когда окно отмены уже закрыто
	ErrTooLateToCancel = fmt.Errorf("policy: too late to cancel: %w", domain.ErrPolicyViolation)
)
