package check_conflict

import (
	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
)

// ConflictQuery параметры запроса ?start=09:30&duration=60
type ConflictQuery struct {
	Start    string `json:"start" validate:"required,hhmm"`
	Duration int    `json:"duration" validate:"required,min=1,max=480"`
}

// ToServiceRequest конвертирует параметры запроса в модель сервиса
func (q *ConflictQuery) ToServiceRequest(laneNumber int) *models.ConflictRequest {
	return &models.ConflictRequest{
		LaneNumber:      laneNumber,
		Start:           q.Start,
		DurationMinutes: q.Duration,
	}
}
