package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPending   ReservationStatus = "pending"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// ParseReservationStatus конвертирует строку в ReservationStatus с валидацией
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(s); status {
	case ReservationConfirmed, ReservationPending, ReservationCancelled, ReservationCompleted:
		return status, nil
	default:
		return "", ErrInvalidReservationStatus
	}
}

// Reservation represents a swimmer's place in a class
type Reservation struct {
	ID            string
	UserID        string
	ClassID       string
	LaneNumber    int
	ReservedAt    time.Time
	ClassStartsAt time.Time
	Status        ReservationStatus
	Notes         *string

	CheckInAt          *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

// IsActive returns true if the reservation still holds a place in a lane
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationPending
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationCancelled
}

// IsCompleted returns true if the class already took place
func (r *Reservation) IsCompleted() bool {
	return r.Status == ReservationCompleted
}

// ReservationDraft reservation request before it is accepted
// PreferredLane == nil means "any lane"
type ReservationDraft struct {
	UserID        string
	ClassID       string
	PreferredLane *int
	Notes         *string
}
