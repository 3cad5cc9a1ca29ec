package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("reservation.repository: reservation %w", domain.ErrNotFound)

	// ErrDuplicateReservation возвращается при повторном ID
	ErrDuplicateReservation = errors.New("reservation.repository: duplicate reservation id")

	// ErrEmptyID возвращается при сохранении бронирования без ID
	ErrEmptyID = errors.New("reservation.repository: reservation id is empty")

	// ErrCannotCancel возвращается, когда бронирование уже не активно
	ErrCannotCancel = fmt.Errorf("reservation.repository: reservation cannot be cancelled: %w", domain.ErrInvalidStateTransition)
)
