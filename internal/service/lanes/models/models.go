package models

import (
	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/service/labels"
)

// Request модели

// ListLanesRequest запрос списка дорожек
type ListLanesRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ConflictRequest проверка пересечения окна времени с классом на дорожке
type ConflictRequest struct {
	LaneNumber      int    `json:"laneNumber"`
	Start           string `json:"start"` // "09:30"
	DurationMinutes int    `json:"durationMinutes"`
}

// Response модели

// LaneResponse ответ с данными дорожки
type LaneResponse struct {
	Number             int      `json:"number"`
	Capacity           int      `json:"capacity"`
	Occupancy          int      `json:"occupancy"`
	FreeSpots          int      `json:"freeSpots"`
	OccupancyRate      float64  `json:"occupancyRate"`
	Status             string   `json:"status"`
	StatusLabel        string   `json:"statusLabel"`
	ClassType          *string  `json:"classType,omitempty"`
	ClassTypeLabel     *string  `json:"classTypeLabel,omitempty"`
	InstructorID       *string  `json:"instructorId,omitempty"`
	StartTime          *string  `json:"startTime,omitempty"` // "09:00"
	EndTime            *string  `json:"endTime,omitempty"`   // "10:00"
	ActiveReservations []string `json:"activeReservations"`
}

// LaneListResponse список дорожек
type LaneListResponse struct {
	Lanes []LaneResponse `json:"lanes"`
	Total int            `json:"total"`
}

// StatsResponse агрегированная занятость бассейна
type StatsResponse struct {
	TotalLanes         int     `json:"totalLanes"`
	TotalCapacity      int     `json:"totalCapacity"`
	CurrentOccupancy   int     `json:"currentOccupancy"`
	OccupancyPercent   float64 `json:"occupancyPercent"`
	LanesInUse         int     `json:"lanesInUse"`
	LanesInMaintenance int     `json:"lanesInMaintenance"`
	LanesAvailable     int     `json:"lanesAvailable"`
	RemainingCapacity  int     `json:"remainingCapacity"`
}

// ConflictResponse результат проверки пересечения
type ConflictResponse struct {
	LaneNumber int  `json:"laneNumber"`
	Conflict   bool `json:"conflict"`
}

// LaneCSVRow строка выгрузки дорожек в CSV
type LaneCSVRow struct {
	Number             int    `csv:"lane"`
	Capacity           int    `csv:"capacity"`
	Occupancy          int    `csv:"occupancy"`
	Status             string `csv:"status"`
	ClassType          string `csv:"class_type"`
	InstructorID       string `csv:"instructor_id"`
	StartTime          string `csv:"start_time"`
	EndTime            string `csv:"end_time"`
	ActiveReservations string `csv:"active_reservations"`
}

// Конвертеры

// FromDomainLane конвертирует доменную дорожку в ответ
func FromDomainLane(lane domain.Lane) LaneResponse {
	resp := LaneResponse{
		Number:             lane.Number,
		Capacity:           lane.Capacity,
		Occupancy:          lane.Occupancy,
		FreeSpots:          lane.FreeSpots(),
		OccupancyRate:      lane.OccupancyRate(),
		Status:             string(lane.Status),
		StatusLabel:        labels.LaneStatus(lane.Status),
		InstructorID:       lane.InstructorID,
		ActiveReservations: lane.ActiveReservations,
	}
	if resp.ActiveReservations == nil {
		resp.ActiveReservations = []string{}
	}
	if lane.ClassType != nil {
		ct := string(*lane.ClassType)
		label := labels.ClassType(*lane.ClassType)
		resp.ClassType = &ct
		resp.ClassTypeLabel = &label
	}
	if lane.HasTimeWindow() {
		start := lane.StartTime.String()
		end := lane.EndTime.String()
		resp.StartTime = &start
		resp.EndTime = &end
	}
	return resp
}

// FromDomainLaneList конвертирует список дорожек
func FromDomainLaneList(lanes []domain.Lane) *LaneListResponse {
	result := make([]LaneResponse, 0, len(lanes))
	for _, lane := range lanes {
		result = append(result, FromDomainLane(lane))
	}
	return &LaneListResponse{
		Lanes: result,
		Total: len(result),
	}
}

// FromDomainStats конвертирует статистику занятости
func FromDomainStats(stats domain.OccupancyStats) *StatsResponse {
	return &StatsResponse{
		TotalLanes:         stats.TotalLanes,
		TotalCapacity:      stats.TotalCapacity,
		CurrentOccupancy:   stats.CurrentOccupancy,
		OccupancyPercent:   stats.OccupancyPercent,
		LanesInUse:         stats.LanesInUse,
		LanesInMaintenance: stats.LanesInMaintenance,
		LanesAvailable:     stats.LanesAvailable,
		RemainingCapacity:  stats.RemainingCapacity,
	}
}
