package lanes

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrLaneNotFound возвращается, когда дорожка не найдена
	ErrLaneNotFound = fmt.Errorf("lane %w", domain.ErrNotFound)

	// ErrLaneOccupied возвращается при попытке закрыть на обслуживание занятую дорожку
	ErrLaneOccupied = fmt.Errorf("lane is occupied: %w", domain.ErrInvalidStateTransition)

	// ErrLaneNotInMaintenance возвращается при снятии с обслуживания рабочей дорожки
	ErrLaneNotInMaintenance = fmt.Errorf("lane is not in maintenance: %w", domain.ErrInvalidStateTransition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
