package policy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// Пороговые значения правил по умолчанию
const (
	DefaultBookingLeadTime    = domain.DefaultBookingLeadMinutes * time.Minute
	DefaultCancellationWindow = domain.DefaultCancellationWindowMinutes * time.Minute
)

// LaneChecker часть реестра дорожек, нужная для проверки бронирования
type LaneChecker interface {
	CanAccommodate(number int, additional int) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Option настраивает Manager
type Option func(*Manager)

// WithBookingLeadTime задает минимальное время между бронированием и началом класса
func WithBookingLeadTime(d time.Duration) Option {
	return func(m *Manager) {
		m.bookingLeadTime = d
	}
}

// WithCancellationWindow задает минимальное время до начала класса, когда отмена еще возможна
func WithCancellationWindow(d time.Duration) Option {
	return func(m *Manager) {
		m.cancellationWindow = d
	}
}

// WithTimeProvider подменяет источник текущего времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(m *Manager) {
		if tp != nil {
			m.timeProvider = tp
		}
	}
}

// Manager правила бронирования и отмены
// Не хранит состояния, кроме настроек: все данные передаются в аргументах
type Manager struct {
	bookingLeadTime    time.Duration
	cancellationWindow time.Duration
	timeProvider       TimeProvider
}

// New создает Manager с порогами по умолчанию
func New(opts ...Option) *Manager {
	m := &Manager{
		bookingLeadTime:    DefaultBookingLeadTime,
		cancellationWindow: DefaultCancellationWindow,
		timeProvider:       &RealTimeProvider{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BookingLeadTime возвращает действующее минимальное время бронирования
func (m *Manager) BookingLeadTime() time.Duration {
	return m.bookingLeadTime
}

// CancellationWindow возвращает действующее окно отмены
func (m *Manager) CancellationWindow() time.Duration {
	return m.cancellationWindow
}

// ValidateReservation проверяет, можно ли принять бронирование
// Порядок проверок: места в классе, выбранная дорожка, время до начала
func (m *Manager) ValidateReservation(draft domain.ReservationDraft, class domain.SwimClass, lanes LaneChecker) error {
	if class.IsFull() {
		return fmt.Errorf("%w: %d/%d places taken", ErrClassFull, class.CurrentReservations, class.MaxCapacity)
	}

	if draft.PreferredLane != nil && !lanes.CanAccommodate(*draft.PreferredLane, 1) {
		return fmt.Errorf("%w: lane %d", ErrLaneUnavailable, *draft.PreferredLane)
	}

	untilStart := class.StartsAt.Sub(m.timeProvider.Now())
	if untilStart < m.bookingLeadTime {
		return fmt.Errorf("%w: must book at least %s in advance", ErrTooLateToBook, m.bookingLeadTime)
	}

	return nil
}

// CanCancel проверяет, можно ли отменить бронирование
func (m *Manager) CanCancel(r domain.Reservation) error {
	switch r.Status {
	case domain.ReservationCancelled:
		return ErrAlreadyCancelled
	case domain.ReservationCompleted:
		return ErrAlreadyCompleted
	case domain.ReservationConfirmed, domain.ReservationPending:
	}

	untilStart := r.ClassStartsAt.Sub(m.timeProvider.Now())
	if untilStart < m.cancellationWindow {
		return fmt.Errorf("%w: must cancel at least %s in advance", ErrTooLateToCancel, m.cancellationWindow)
	}

	return nil
}
