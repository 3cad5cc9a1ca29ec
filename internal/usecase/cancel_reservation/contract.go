package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string, reason *string, at time.Time) (*domain.Reservation, error)
}

// ClassRepository интерфейс каталога классов
type ClassRepository interface {
	DecrementReservations(ctx context.Context, id string) (*domain.SwimClass, error)
}

// LaneRegistry интерфейс реестра дорожек
type LaneRegistry interface {
	RemoveReservation(number int, reservationID string) error
}

// CancellationPolicy интерфейс правил отмены
type CancellationPolicy interface {
	CanCancel(r domain.Reservation) error
}

// MetricsRecorder интерфейс для учета результатов отмены
type MetricsRecorder interface {
	IncReservation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
