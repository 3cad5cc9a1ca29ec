package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = fmt.Errorf("create_reservation: class %w", domain.ErrNotFound)

	// ErrLaneNotFound возвращается, когда выбранной дорожки не существует
	ErrLaneNotFound = fmt.Errorf("create_reservation: lane %w", domain.ErrNotFound)

	// ErrClassFull возвращается, когда в классе не осталось мест
	ErrClassFull = fmt.Errorf("create_reservation: class is full: %w", domain.ErrCapacityExceeded)

	// ErrLaneUnavailable возвращается, когда дорожка не может принять пловца
	ErrLaneUnavailable = fmt.Errorf("create_reservation: lane is unavailable: %w", domain.ErrCapacityExceeded)

	// ErrNoLaneAvailable возвращается, когда свободной дорожки нет
	ErrNoLaneAvailable = fmt.Errorf("create_reservation: no lane available: %w", domain.ErrCapacityExceeded)

	// ErrTooLateToBook возвращается, когда до начала класса слишком мало времени
	ErrTooLateToBook = fmt.Errorf("create_reservation: too late to book: %w", domain.ErrPolicyViolation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
