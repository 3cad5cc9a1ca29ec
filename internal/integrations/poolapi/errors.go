package poolapi

import "errors"

var (
	// ErrLaneNotFound возвращается, когда дорожки с таким номером нет
	ErrLaneNotFound = errors.New("lane not found")

	// ErrConflict возвращается, когда операция недопустима в текущем состоянии дорожки
	ErrConflict = errors.New("lane state conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("poolapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("poolapi client: invalid response")
)
