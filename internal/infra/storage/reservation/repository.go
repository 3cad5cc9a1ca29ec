package reservation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// NewID генерирует идентификатор бронирования
func NewID() string {
	return uuid.NewString()
}

// Repository хранилище бронирований в памяти
type Repository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		reservations: make(map[string]*domain.Reservation),
	}
}

// Create сохраняет новое бронирование
// ID назначается вызывающим кодом заранее: он же попадает в список активных бронирований дорожки
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if reservation.ID == "" {
		return nil, ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reservations[reservation.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateReservation, reservation.ID)
	}

	stored := cloneReservation(reservation)
	r.reservations[stored.ID] = &stored

	result := cloneReservation(&stored)
	return &result, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrReservationNotFound, id)
	}
	result := cloneReservation(stored)
	return &result, nil
}

// ListByUser возвращает бронирования пользователя, отсортированные по началу занятия
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Reservation{}
	for _, stored := range r.reservations {
		if stored.UserID == userID {
			result = append(result, cloneReservation(stored))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ClassStartsAt.Equal(result[j].ClassStartsAt) {
			return result[i].ReservedAt.Before(result[j].ReservedAt)
		}
		return result[i].ClassStartsAt.Before(result[j].ClassStartsAt)
	})
	return result, nil
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id string, reason *string, at time.Time) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrReservationNotFound, id)
	}
	if !stored.IsActive() {
		return nil, fmt.Errorf("%w: id=%s, status=%s", ErrCannotCancel, id, stored.Status)
	}

	cancelledAt := at
	stored.Status = domain.ReservationCancelled
	stored.CancelledAt = &cancelledAt
	stored.CancellationReason = cloneString(reason)

	result := cloneReservation(stored)
	return &result, nil
}

// Delete удаляет бронирование (используется для отката неудачного создания)
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return fmt.Errorf("%w: id=%s", ErrReservationNotFound, id)
	}
	delete(r.reservations, id)
	return nil
}

func cloneReservation(src *domain.Reservation) domain.Reservation {
	cp := *src
	cp.Notes = cloneString(src.Notes)
	cp.CancellationReason = cloneString(src.CancellationReason)
	cp.CheckInAt = cloneTime(src.CheckInAt)
	cp.CancelledAt = cloneTime(src.CancelledAt)
	return cp
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
