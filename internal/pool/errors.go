package pool

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

var (
	// ErrLaneNotFound возвращается, когда дорожки с таким номером нет
	ErrLaneNotFound = fmt.Errorf("pool: lane %w", domain.ErrNotFound)

	// ErrReservationNotInLane возвращается, когда бронирования нет среди активных на дорожке
	ErrReservationNotInLane = fmt.Errorf("pool: reservation %w in lane", domain.ErrNotFound)

	// ErrLaneCannotAccommodate возвращается, когда на дорожке не хватает мест
	ErrLaneCannotAccommodate = fmt.Errorf("pool: lane %w", domain.ErrCapacityExceeded)

	// ErrLaneInMaintenance возвращается при попытке занять дорожку на обслуживании
	ErrLaneInMaintenance = fmt.Errorf("pool: lane is in maintenance: %w", domain.ErrInvalidStateTransition)

	// ErrLaneOccupied возвращается при попытке перевести занятую дорожку на обслуживание
	ErrLaneOccupied = fmt.Errorf("pool: lane is occupied: %w", domain.ErrInvalidStateTransition)

	// ErrLaneNotInMaintenance возвращается при попытке снять с обслуживания рабочую дорожку
	ErrLaneNotInMaintenance = fmt.Errorf("pool: lane is not in maintenance: %w", domain.ErrInvalidStateTransition)

	// ErrReservationAlreadyInLane возвращается, когда бронирование уже числится на дорожке
	ErrReservationAlreadyInLane = fmt.Errorf("pool: reservation already in lane: %w", domain.ErrInvalidStateTransition)

	// ErrInvalidAssignment возвращается при некорректных данных назначаемого класса
	ErrInvalidAssignment = errors.New("pool: invalid class assignment")
)
