package classes

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = fmt.Errorf("class %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
