package cancel_reservation

import (
	"time"

	cancelReservation "github.com/m04kA/SMC-PoolService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// CancelledReservationResponse HTTP response model
type CancelledReservationResponse struct {
	ID                 string  `json:"id"`
	ClassID            string  `json:"classId"`
	LaneNumber         int     `json:"laneNumber"`
	Status             string  `json:"status"`
	CancelledAt        string  `json:"cancelledAt"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(reservationID, userID string) *cancelReservation.Request {
	return &cancelReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Reason:        r.CancellationReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelledReservationResponse {
	return &CancelledReservationResponse{
		ID:                 resp.ID,
		ClassID:            resp.ClassID,
		LaneNumber:         resp.LaneNumber,
		Status:             resp.Status,
		CancelledAt:        resp.CancelledAt.Format(time.RFC3339),
		CancellationReason: resp.CancellationReason,
	}
}
