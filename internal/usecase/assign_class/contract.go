package assign_class

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// ClassRepository интерфейс каталога классов
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SwimClass, error)
	SetAssignedLane(ctx context.Context, id string, laneNumber int) (*domain.SwimClass, error)
}

// LaneRegistry интерфейс реестра дорожек
type LaneRegistry interface {
	GetLane(number int) (domain.Lane, bool)
	FindBestAvailableLane() (int, bool)
	HasTimeConflict(number int, start time.Time, durationMinutes int) bool
	AssignClass(number int, class domain.ClassAssignment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
