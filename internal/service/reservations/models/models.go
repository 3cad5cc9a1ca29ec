package models

import (
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/service/labels"
)

// GetUserReservationsRequest запрос бронирований пользователя
type GetUserReservationsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	ClassID            string     `json:"classId"`
	LaneNumber         int        `json:"laneNumber"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"statusLabel"`
	ReservedAt         time.Time  `json:"reservedAt"`
	ClassStartsAt      time.Time  `json:"classStartsAt"`
	Notes              *string    `json:"notes,omitempty"`
	CheckInAt          *time.Time `json:"checkInAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменное бронирование в ответ
func FromDomainReservation(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		ClassID:            r.ClassID,
		LaneNumber:         r.LaneNumber,
		Status:             string(r.Status),
		StatusLabel:        labels.ReservationStatus(r.Status),
		ReservedAt:         r.ReservedAt,
		ClassStartsAt:      r.ClassStartsAt,
		Notes:              r.Notes,
		CheckInAt:          r.CheckInAt,
		CancelledAt:        r.CancelledAt,
		CancellationReason: r.CancellationReason,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
