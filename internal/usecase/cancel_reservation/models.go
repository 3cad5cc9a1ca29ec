package cancel_reservation

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID string  // ID бронирования
	UserID        string  // ID пользователя, выполняющего отмену
	Reason        *string // Причина отмены (опционально)
}

// Response модель ответа с отмененным бронированием
type Response struct {
	ID                 string
	ClassID            string
	LaneNumber         int
	Status             string
	CancelledAt        time.Time
	CancellationReason *string
}
