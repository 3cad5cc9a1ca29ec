package get_occupancy_stats

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

type LaneService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
