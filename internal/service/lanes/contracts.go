package lanes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// LaneRegistry интерфейс реестра дорожек
type LaneRegistry interface {
	ListLanes() []domain.Lane
	GetLane(number int) (domain.Lane, bool)
	OccupancyStats() domain.OccupancyStats
	HasTimeConflict(number int, start time.Time, durationMinutes int) bool
	ReleaseLane(number int) error
	SetMaintenance(number int) error
	ClearMaintenance(number int) error
}

// ClassAssignments интерфейс каталога классов для снятия назначений с дорожки
type ClassAssignments interface {
	ClearLaneAssignments(ctx context.Context, laneNumber int) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
