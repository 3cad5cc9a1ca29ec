package assign_class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = fmt.Errorf("assign_class: class %w", domain.ErrNotFound)

	// ErrLaneNotFound возвращается, когда дорожки не существует
	ErrLaneNotFound = fmt.Errorf("assign_class: lane %w", domain.ErrNotFound)

	// ErrNoLaneAvailable возвращается, когда пустой дорожки нет
	ErrNoLaneAvailable = fmt.Errorf("assign_class: no lane available: %w", domain.ErrCapacityExceeded)

	// ErrLaneUnavailable возвращается, когда дорожка не вмещает класс или на обслуживании
	ErrLaneUnavailable = fmt.Errorf("assign_class: lane cannot host the class: %w", domain.ErrCapacityExceeded)

	// ErrTimeConflict возвращается, когда время класса пересекается с уже назначенным на дорожку
	ErrTimeConflict = fmt.Errorf("assign_class: time conflict: %w", domain.ErrInvalidStateTransition)

	// ErrAlreadyAssigned возвращается, когда класс уже назначен на другую дорожку
	ErrAlreadyAssigned = fmt.Errorf("assign_class: class already assigned to another lane: %w", domain.ErrInvalidStateTransition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_class: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_class: internal error")
)
