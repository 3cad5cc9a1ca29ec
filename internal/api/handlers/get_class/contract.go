package get_class

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/classes/models"
)

type ClassService interface {
	GetClass(ctx context.Context, id string) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
