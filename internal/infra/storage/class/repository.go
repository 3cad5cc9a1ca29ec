package class

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// Repository каталог классов в памяти
// Все методы возвращают копии, изменения выполняются только через методы репозитория
type Repository struct {
	mu      sync.RWMutex
	classes map[string]*domain.SwimClass
	order   []string
}

// NewRepository создает каталог из списка классов с сохранением порядка
func NewRepository(classes []domain.SwimClass) (*Repository, error) {
	r := &Repository{
		classes: make(map[string]*domain.SwimClass, len(classes)),
		order:   make([]string, 0, len(classes)),
	}
	for i := range classes {
		c := cloneClass(&classes[i])
		if _, exists := r.classes[c.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, c.ID)
		}
		r.classes[c.ID] = &c
		r.order = append(r.order, c.ID)
	}
	return r, nil
}

// List возвращает все классы в порядке каталога
func (r *Repository) List(ctx context.Context) ([]domain.SwimClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.SwimClass, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneClass(r.classes[id]))
	}
	return result, nil
}

// GetByID получает класс по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SwimClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrClassNotFound, id)
	}
	cp := cloneClass(c)
	return &cp, nil
}

// IncrementReservations занимает одно место в классе
func (r *Repository) IncrementReservations(ctx context.Context, id string) (*domain.SwimClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrClassNotFound, id)
	}
	if c.IsFull() {
		return nil, fmt.Errorf("%w: id=%s", ErrClassFull, id)
	}
	c.CurrentReservations++

	cp := cloneClass(c)
	return &cp, nil
}

// DecrementReservations освобождает одно место в классе
func (r *Repository) DecrementReservations(ctx context.Context, id string) (*domain.SwimClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrClassNotFound, id)
	}
	if c.CurrentReservations == 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrNoReservations, id)
	}
	c.CurrentReservations--

	cp := cloneClass(c)
	return &cp, nil
}

// SetAssignedLane запоминает дорожку, на которую назначен класс
func (r *Repository) SetAssignedLane(ctx context.Context, id string, laneNumber int) (*domain.SwimClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrClassNotFound, id)
	}
	lane := laneNumber
	c.AssignedLane = &lane

	cp := cloneClass(c)
	return &cp, nil
}

// ClearAssignedLane снимает назначение класса на дорожку
func (r *Repository) ClearAssignedLane(ctx context.Context, id string) (*domain.SwimClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrClassNotFound, id)
	}
	c.AssignedLane = nil

	cp := cloneClass(c)
	return &cp, nil
}

// ClearLaneAssignments снимает назначение со всех классов, стоящих на дорожке
// Возвращает ID затронутых классов в порядке каталога
func (r *Repository) ClearLaneAssignments(ctx context.Context, laneNumber int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cleared []string
	for _, id := range r.order {
		c := r.classes[id]
		if c.AssignedLane != nil && *c.AssignedLane == laneNumber {
			c.AssignedLane = nil
			cleared = append(cleared, id)
		}
	}
	return cleared, nil
}

func cloneClass(c *domain.SwimClass) domain.SwimClass {
	cp := *c
	if c.Equipment != nil {
		cp.Equipment = append([]string(nil), c.Equipment...)
	}
	if c.AssignedLane != nil {
		lane := *c.AssignedLane
		cp.AssignedLane = &lane
	}
	if c.ImageURL != nil {
		url := *c.ImageURL
		cp.ImageURL = &url
	}
	return cp
}
