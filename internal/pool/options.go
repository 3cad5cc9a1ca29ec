package pool

import "github.com/m04kA/SMC-PoolService/internal/domain"

// Option configures a Manager
type Option func(*Manager)

// WithLanes sets the number of lanes. Negative values are treated as zero
func WithLanes(n int) Option {
	return func(m *Manager) {
		if n < 0 {
			n = 0
		}
		m.laneCount = n
	}
}

// WithLaneCapacity sets the per-lane capacity. Non-positive values are ignored
func WithLaneCapacity(capacity int) Option {
	return func(m *Manager) {
		if capacity > 0 {
			m.laneCapacity = capacity
		}
	}
}

// WithObserver registers a callback invoked with a copy of a lane after every
// successful mutation of that lane. Callbacks run outside the registry lock
func WithObserver(fn func(domain.Lane)) Option {
	return func(m *Manager) {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
	}
}
