package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/service/labels"
	createReservation "github.com/m04kA/SMC-PoolService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClassID       string  `json:"classId" validate:"required,max=64"`
	PreferredLane *int    `json:"preferredLane,omitempty" validate:"omitempty,min=1"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	ClassID       string  `json:"classId"`
	ClassTitle    string  `json:"classTitle"`
	LaneNumber    int     `json:"laneNumber"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	ReservedAt    string  `json:"reservedAt"`
	ClassStartsAt string  `json:"classStartsAt"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) *createReservation.Request {
	return &createReservation.Request{
		UserID:        userID,
		ClassID:       r.ClassID,
		PreferredLane: r.PreferredLane,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		ClassID:       resp.ClassID,
		ClassTitle:    resp.ClassTitle,
		LaneNumber:    resp.LaneNumber,
		Status:        resp.Status,
		StatusLabel:   labels.ReservationStatus(domain.ReservationStatus(resp.Status)),
		ReservedAt:    resp.ReservedAt.Format(time.RFC3339),
		ClassStartsAt: resp.ClassStartsAt.Format(time.RFC3339),
		Notes:         resp.Notes,
	}
}
