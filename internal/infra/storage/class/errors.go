package class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = fmt.Errorf("class.repository: class %w", domain.ErrNotFound)

	// ErrClassFull возвращается, когда в классе не осталось мест
	ErrClassFull = fmt.Errorf("class.repository: class is full: %w", domain.ErrCapacityExceeded)

	// ErrNoReservations возвращается при попытке уменьшить нулевой счетчик бронирований
	ErrNoReservations = fmt.Errorf("class.repository: class has no reservations: %w", domain.ErrInvalidStateTransition)

	// ErrDuplicateClass возвращается при повторном ID в каталоге
	ErrDuplicateClass = errors.New("class.repository: duplicate class id")

	// ErrReadSeed возвращается, когда файл каталога не удалось прочитать
	ErrReadSeed = errors.New("class.repository: failed to read seed file")

	// ErrInvalidRow возвращается при некорректной строке каталога
	ErrInvalidRow = errors.New("class.repository: invalid catalog row")
)
