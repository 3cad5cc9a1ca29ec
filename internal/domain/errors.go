package domain

import "errors"

// Категории ошибок. Ошибки пакетов оборачивают одну из них через %w,
// поэтому вызывающий код может проверять как точную причину, так и категорию
var (
	// ErrNotFound дорожка, класс или бронирование отсутствуют
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded превышена вместимость дорожки или класса
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidStateTransition недопустимый переход состояния дорожки
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrPolicyViolation нарушение правил бронирования или отмены
	ErrPolicyViolation = errors.New("policy violation")
)

var (
	ErrInvalidLaneStatus        = errors.New("domain: invalid lane status")
	ErrInvalidClassType         = errors.New("domain: invalid class type")
	ErrInvalidSwimLevel         = errors.New("domain: invalid swim level")
	ErrInvalidReservationStatus = errors.New("domain: invalid reservation status")
)

// Category возвращает короткую метку категории ошибки для метрик и логов
func Category(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrInvalidStateTransition):
		return "invalid_state"
	case errors.Is(err, ErrPolicyViolation):
		return "policy_violation"
	default:
		return "error"
	}
}
