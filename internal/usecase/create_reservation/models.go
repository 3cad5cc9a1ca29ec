package create_reservation

import "time"

// Request модель запроса на бронирование места в классе
type Request struct {
	UserID        string  // ID пользователя
	ClassID       string  // ID класса
	PreferredLane *int    // Желаемая дорожка (nil - любая)
	Notes         *string // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	UserID        string
	ClassID       string
	ClassTitle    string
	LaneNumber    int
	Status        string
	ReservedAt    time.Time
	ClassStartsAt time.Time
	Notes         *string
}
