package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-PoolService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id string, userID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
