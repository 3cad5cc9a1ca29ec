package models

import (
	"time"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/service/labels"
)

// ListClassesRequest фильтры каталога
type ListClassesRequest struct {
	Level     *string `json:"level,omitempty"`
	ClassType *string `json:"classType,omitempty"`
	OnlyOpen  bool    `json:"onlyOpen,omitempty"` // Только классы со свободными местами
}

// ClassResponse ответ с данными класса
type ClassResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Level               string    `json:"level"`
	LevelLabel          string    `json:"levelLabel"`
	ClassType           string    `json:"classType"`
	ClassTypeLabel      string    `json:"classTypeLabel"`
	DurationMinutes     int       `json:"durationMinutes"`
	MaxCapacity         int       `json:"maxCapacity"`
	CurrentReservations int       `json:"currentReservations"`
	FreeSpots           int       `json:"freeSpots"`
	Price               float64   `json:"price"`
	InstructorID        string    `json:"instructorId"`
	Equipment           []string  `json:"equipment"`
	StartsAt            time.Time `json:"startsAt"`
	AssignedLane        *int      `json:"assignedLane,omitempty"`
	ImageURL            *string   `json:"imageUrl,omitempty"`
}

// ClassListResponse список классов
type ClassListResponse struct {
	Classes []ClassResponse `json:"classes"`
	Total   int             `json:"total"`
}

// FromDomainClass конвертирует доменный класс в ответ
func FromDomainClass(c domain.SwimClass) ClassResponse {
	equipment := c.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return ClassResponse{
		ID:                  c.ID,
		Title:               c.Title,
		Description:         c.Description,
		Level:               string(c.Level),
		LevelLabel:          labels.SwimLevel(c.Level),
		ClassType:           string(c.ClassType),
		ClassTypeLabel:      labels.ClassType(c.ClassType),
		DurationMinutes:     c.DurationMinutes,
		MaxCapacity:         c.MaxCapacity,
		CurrentReservations: c.CurrentReservations,
		FreeSpots:           c.FreeSpots(),
		Price:               c.Price,
		InstructorID:        c.InstructorID,
		Equipment:           equipment,
		StartsAt:            c.StartsAt,
		AssignedLane:        c.AssignedLane,
		ImageURL:            c.ImageURL,
	}
}

// FromDomainClassList конвертирует список классов
func FromDomainClassList(classes []domain.SwimClass) *ClassListResponse {
	result := make([]ClassResponse, 0, len(classes))
	for _, c := range classes {
		result = append(result, FromDomainClass(c))
	}
	return &ClassListResponse{
		Classes: result,
		Total:   len(result),
	}
}
