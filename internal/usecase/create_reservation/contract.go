package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/policy"
)

// ClassRepository интерфейс каталога классов
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SwimClass, error)
	IncrementReservations(ctx context.Context, id string) (*domain.SwimClass, error)
	DecrementReservations(ctx context.Context, id string) (*domain.SwimClass, error)
	SetAssignedLane(ctx context.Context, id string, laneNumber int) (*domain.SwimClass, error)
	ClearAssignedLane(ctx context.Context, id string) (*domain.SwimClass, error)
}

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// LaneRegistry интерфейс реестра дорожек
type LaneRegistry interface {
	GetLane(number int) (domain.Lane, bool)
	CanAccommodate(number int, additional int) bool
	FindBestAvailableLane() (int, bool)
	AssignClass(number int, class domain.ClassAssignment) error
	UnassignClass(number int) error
	AddReservation(number int, reservationID string) error
	RemoveReservation(number int, reservationID string) error
}

// ReservationPolicy интерфейс правил бронирования
type ReservationPolicy interface {
	ValidateReservation(draft domain.ReservationDraft, class domain.SwimClass, lanes policy.LaneChecker) error
}

// MetricsRecorder интерфейс для учета результатов бронирования
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
