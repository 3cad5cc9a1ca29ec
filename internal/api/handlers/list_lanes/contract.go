package list_lanes

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

type LaneService interface {
	ListLanes(ctx context.Context, req *models.ListLanesRequest) (*models.LaneListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
