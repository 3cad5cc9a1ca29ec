package clear_maintenance

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

type LaneService interface {
	ClearMaintenance(ctx context.Context, number int) (*models.LaneResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
