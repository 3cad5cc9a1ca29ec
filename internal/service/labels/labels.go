// Package labels содержит отображаемые названия статусов, типов и уровней для ответов API.
package labels

import "github.com/m04kA/SMC-PoolService/internal/domain"

var laneStatuses = map[domain.LaneStatus]string{
	domain.LaneAvailable:         "Свободна",
	domain.LanePartiallyOccupied: "Частично занята",
	domain.LaneFull:              "Заполнена",
	domain.LaneMaintenance:       "На обслуживании",
}

var classTypes = map[domain.ClassType]string{
	domain.ClassGroup:        "Групповое занятие",
	domain.ClassIndividual:   "Индивидуальное занятие",
	domain.ClassAquaAerobics: "Аквааэробика",
	domain.ClassFreeTraining: "Свободное плавание",
}

var swimLevels = map[domain.SwimLevel]string{
	domain.LevelBeginner:     "Начальный",
	domain.LevelIntermediate: "Средний",
	domain.LevelAdvanced:     "Продвинутый",
	domain.LevelCompetitive:  "Спортивный",
}

var reservationStatuses = map[domain.ReservationStatus]string{
	domain.ReservationConfirmed: "Подтверждено",
	domain.ReservationPending:   "Ожидает подтверждения",
	domain.ReservationCancelled: "Отменено",
	domain.ReservationCompleted: "Завершено",
}

// LaneStatus возвращает название статуса дорожки
func LaneStatus(s domain.LaneStatus) string {
	return lookup(laneStatuses, s)
}

// ClassType возвращает название типа занятия
func ClassType(t domain.ClassType) string {
	return lookup(classTypes, t)
}

// SwimLevel возвращает название уровня
func SwimLevel(l domain.SwimLevel) string {
	return lookup(swimLevels, l)
}

// ReservationStatus возвращает название статуса бронирования
func ReservationStatus(s domain.ReservationStatus) string {
	return lookup(reservationStatuses, s)
}

// lookup возвращает исходное значение, если названия нет
func lookup[K ~string](m map[K]string, key K) string {
	if label, ok := m[key]; ok {
		return label
	}
	return string(key)
}
