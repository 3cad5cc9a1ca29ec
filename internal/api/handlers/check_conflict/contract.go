package check_conflict

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

type LaneService interface {
	CheckConflict(ctx context.Context, req *models.ConflictRequest) (*models.ConflictResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
