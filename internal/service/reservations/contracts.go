package reservations

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
