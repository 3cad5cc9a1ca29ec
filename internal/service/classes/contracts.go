package classes

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

// ClassRepository интерфейс каталога классов
type ClassRepository interface {
	List(ctx context.Context) ([]domain.SwimClass, error)
	GetByID(ctx context.Context, id string) (*domain.SwimClass, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
