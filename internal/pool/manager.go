package pool

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

const minutesPerDay = 24 * 60

// Manager реестр дорожек бассейна: единственный источник правды о занятости
//
// Набор дорожек фиксируется при создании и не меняется. Все методы потокобезопасны:
// один RWMutex на весь реестр делает проверку и изменение атомарными.
// Методы чтения возвращают копии, поэтому внешний код не может обойти инварианты.
type Manager struct {
	mu           sync.RWMutex
	lanes        []*domain.Lane // lanes[i].Number == i+1
	laneCount    int
	laneCapacity int
	observers    []func(domain.Lane)
}

// NewManager создает реестр с дорожками в состоянии по умолчанию
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		laneCount:    domain.DefaultLaneCount,
		laneCapacity: domain.DefaultLaneCapacity,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.lanes = make([]*domain.Lane, m.laneCount)
	for i := range m.lanes {
		m.lanes[i] = &domain.Lane{
			Number:             i + 1,
			Capacity:           m.laneCapacity,
			Status:             domain.LaneAvailable,
			ActiveReservations: []string{},
		}
	}
	return m
}

// LaneCount возвращает количество дорожек
func (m *Manager) LaneCount() int {
	return m.laneCount
}

// LaneCapacity возвращает вместимость одной дорожки
func (m *Manager) LaneCapacity() int {
	return m.laneCapacity
}

// ListLanes возвращает копии всех дорожек по возрастанию номера
func (m *Manager) ListLanes() []domain.Lane {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Lane, len(m.lanes))
	for i, lane := range m.lanes {
		result[i] = lane.Clone()
	}
	return result
}

// GetLane возвращает копию дорожки; false, если номера нет
func (m *Manager) GetLane(number int) (domain.Lane, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lane := m.laneLocked(number)
	if lane == nil {
		return domain.Lane{}, false
	}
	return lane.Clone(), true
}

// CanAccommodate сообщает, поместятся ли на дорожку еще additional человек
func (m *Manager) CanAccommodate(number int, additional int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.accommodateLocked(number, additional) == nil
}

// FindBestAvailableLane возвращает дорожку с наименьшим номером, которая полностью
// свободна и не на обслуживании. Частично занятые дорожки не рассматриваются
func (m *Manager) FindBestAvailableLane() (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, lane := range m.lanes {
		if !lane.IsInMaintenance() && lane.IsEmpty() {
			return lane.Number, true
		}
	}
	return 0, false
}

// AssignClass переносит на дорожку тип класса, инструктора и окно времени
// Занятость и статус не меняются
func (m *Manager) AssignClass(number int, class domain.ClassAssignment) error {
	m.mu.Lock()
	lane, err := m.assignClassLocked(number, class)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.notify(lane)
	return nil
}

func (m *Manager) assignClassLocked(number int, class domain.ClassAssignment) (domain.Lane, error) {
	if err := m.accommodateLocked(number, class.Capacity); err != nil {
		return domain.Lane{}, err
	}

	if err := class.StartTime.Validate(); err != nil {
		return domain.Lane{}, fmt.Errorf("%w: %v", ErrInvalidAssignment, err)
	}
	if class.DurationMinutes <= 0 {
		return domain.Lane{}, fmt.Errorf("%w: duration must be positive", ErrInvalidAssignment)
	}
	end, err := class.StartTime.AddMinutes(class.DurationMinutes)
	if err != nil {
		return domain.Lane{}, fmt.Errorf("%w: %v", ErrInvalidAssignment, err)
	}

	lane := m.laneLocked(number)
	classType := class.ClassType
	instructor := class.InstructorID
	lane.ClassType = &classType
	lane.InstructorID = &instructor
	lane.StartTime = class.StartTime
	lane.EndTime = end
	m.recomputeLocked(lane)

	return lane.Clone(), nil
}

// UnassignClass снимает с дорожки тип класса, инструктора и окно времени
// Занятость и статус не меняются
func (m *Manager) UnassignClass(number int) error {
	m.mu.Lock()
	lane := m.laneLocked(number)
	if lane == nil {
		m.mu.Unlock()
		return ErrLaneNotFound
	}

	lane.ClassType = nil
	lane.InstructorID = nil
	lane.StartTime = ""
	lane.EndTime = ""
	snapshot := lane.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// AddReservation добавляет бронирование на дорожку и увеличивает занятость
func (m *Manager) AddReservation(number int, reservationID string) error {
	m.mu.Lock()
	lane, err := m.addReservationLocked(number, reservationID)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.notify(lane)
	return nil
}

func (m *Manager) addReservationLocked(number int, reservationID string) (domain.Lane, error) {
	if err := m.accommodateLocked(number, 1); err != nil {
		return domain.Lane{}, err
	}

	lane := m.laneLocked(number)
	if slices.Contains(lane.ActiveReservations, reservationID) {
		return domain.Lane{}, fmt.Errorf("%w: %s", ErrReservationAlreadyInLane, reservationID)
	}

	lane.ActiveReservations = append(lane.ActiveReservations, reservationID)
	lane.Occupancy++
	m.recomputeLocked(lane)

	return lane.Clone(), nil
}

// RemoveReservation убирает бронирование с дорожки и уменьшает занятость
func (m *Manager) RemoveReservation(number int, reservationID string) error {
	m.mu.Lock()
	lane, err := m.removeReservationLocked(number, reservationID)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.notify(lane)
	return nil
}

func (m *Manager) removeReservationLocked(number int, reservationID string) (domain.Lane, error) {
	lane := m.laneLocked(number)
	if lane == nil {
		return domain.Lane{}, ErrLaneNotFound
	}

	idx := slices.Index(lane.ActiveReservations, reservationID)
	if idx < 0 {
		return domain.Lane{}, fmt.Errorf("%w: %s", ErrReservationNotInLane, reservationID)
	}

	lane.ActiveReservations = slices.Delete(lane.ActiveReservations, idx, idx+1)
	lane.Occupancy = max(0, lane.Occupancy-1)
	m.recomputeLocked(lane)

	return lane.Clone(), nil
}

// ReleaseLane сбрасывает дорожку в исходное состояние, в том числе снимает обслуживание
// Повторный вызов дает тот же результат
func (m *Manager) ReleaseLane(number int) error {
	m.mu.Lock()
	lane := m.laneLocked(number)
	if lane == nil {
		m.mu.Unlock()
		return ErrLaneNotFound
	}

	lane.Occupancy = 0
	lane.ActiveReservations = []string{}
	lane.ClassType = nil
	lane.InstructorID = nil
	lane.StartTime = ""
	lane.EndTime = ""
	lane.Status = domain.LaneAvailable
	snapshot := lane.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// SetMaintenance переводит пустую дорожку на обслуживание
func (m *Manager) SetMaintenance(number int) error {
	m.mu.Lock()
	lane := m.laneLocked(number)
	if lane == nil {
		m.mu.Unlock()
		return ErrLaneNotFound
	}
	if lane.Occupancy > 0 {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d swimmers assigned", ErrLaneOccupied, lane.Occupancy)
	}

	lane.Status = domain.LaneMaintenance
	snapshot := lane.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// ClearMaintenance снимает дорожку с обслуживания и пересчитывает статус
func (m *Manager) ClearMaintenance(number int) error {
	m.mu.Lock()
	lane := m.laneLocked(number)
	if lane == nil {
		m.mu.Unlock()
		return ErrLaneNotFound
	}
	if !lane.IsInMaintenance() {
		m.mu.Unlock()
		return ErrLaneNotInMaintenance
	}

	lane.Status = domain.StatusForOccupancy(lane.Occupancy, lane.Capacity)
	snapshot := lane.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// OccupancyStats возвращает агрегированную занятость бассейна
func (m *Manager) OccupancyStats() domain.OccupancyStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := domain.OccupancyStats{
		TotalLanes:    len(m.lanes),
		TotalCapacity: len(m.lanes) * m.laneCapacity,
	}

	for _, lane := range m.lanes {
		stats.CurrentOccupancy += lane.Occupancy
		if lane.Occupancy > 0 {
			stats.LanesInUse++
		}
		if lane.IsInMaintenance() {
			stats.LanesInMaintenance++
		}
	}

	stats.LanesAvailable = stats.TotalLanes - stats.LanesInUse - stats.LanesInMaintenance
	stats.RemainingCapacity = stats.TotalCapacity - stats.CurrentOccupancy
	if stats.TotalCapacity > 0 {
		stats.OccupancyPercent = float64(stats.CurrentOccupancy) / float64(stats.TotalCapacity) * 100
	}

	return stats
}

// HasTimeConflict проверяет пересечение [start, start+duration) с окном класса на дорожке
// Сравнивается только время суток. Интервалы, касающиеся границами, не пересекаются
// Новое окно может переходить через полночь, окно на дорожке всегда укладывается в сутки
func (m *Manager) HasTimeConflict(number int, start time.Time, durationMinutes int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lane := m.laneLocked(number)
	if lane == nil || !lane.HasTimeWindow() {
		return false
	}

	existingStart := lane.StartTime.Minutes()
	existingEnd := lane.EndTime.Minutes()
	if existingStart < 0 || existingEnd < 0 {
		return false
	}

	newStart := start.Hour()*60 + start.Minute()
	newEnd := newStart + durationMinutes

	if overlaps(newStart, min(newEnd, minutesPerDay), existingStart, existingEnd) {
		return true
	}
	// Окно, переходящее через полночь, продолжается с начала суток
	return newEnd > minutesPerDay && overlaps(0, newEnd-minutesPerDay, existingStart, existingEnd)
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

func (m *Manager) laneLocked(number int) *domain.Lane {
	if number < 1 || number > len(m.lanes) {
		return nil
	}
	return m.lanes[number-1]
}

func (m *Manager) accommodateLocked(number int, additional int) error {
	lane := m.laneLocked(number)
	if lane == nil {
		return ErrLaneNotFound
	}
	if lane.IsInMaintenance() {
		return ErrLaneInMaintenance
	}
	if lane.Occupancy+additional > lane.Capacity {
		return fmt.Errorf("%w: %d/%d taken, %d requested",
			ErrLaneCannotAccommodate, lane.Occupancy, lane.Capacity, additional)
	}
	return nil
}

// recomputeLocked пересчитывает статус из занятости; обслуживание не трогается
func (m *Manager) recomputeLocked(lane *domain.Lane) {
	if lane.IsInMaintenance() {
		return
	}
	lane.Status = domain.StatusForOccupancy(lane.Occupancy, lane.Capacity)
}

func (m *Manager) notify(lane domain.Lane) {
	for _, fn := range m.observers {
		fn(lane.Clone())
	}
}
