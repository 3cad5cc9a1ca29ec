package domain

import "github.com/m04kA/SMC-PoolService/pkg/types"

// LaneStatus represents the derived status of a pool lane
type LaneStatus string

const (
	LaneAvailable         LaneStatus = "available"
	LanePartiallyOccupied LaneStatus = "partially_occupied"
	LaneFull              LaneStatus = "full"
	LaneMaintenance       LaneStatus = "maintenance"
)

// LaneStatuses все допустимые статусы дорожки
var LaneStatuses = []LaneStatus{
	LaneAvailable,
	LanePartiallyOccupied,
	LaneFull,
	LaneMaintenance,
}

// ParseLaneStatus конвертирует строку в LaneStatus с валидацией
func ParseLaneStatus(s string) (LaneStatus, error) {
	switch status := LaneStatus(s); status {
	case LaneAvailable, LanePartiallyOccupied, LaneFull, LaneMaintenance:
		return status, nil
	default:
		return "", ErrInvalidLaneStatus
	}
}

// StatusForOccupancy derives a lane status from its occupancy
// Maintenance is never derived, it is an explicit override
func StatusForOccupancy(occupancy, capacity int) LaneStatus {
	switch {
	case occupancy <= 0:
		return LaneAvailable
	case occupancy >= capacity:
		return LaneFull
	default:
		return LanePartiallyOccupied
	}
}

// Lane represents a single swimming lane
type Lane struct {
	Number    int
	Capacity  int
	Occupancy int
	Status    LaneStatus

	// Assigned class (all empty when no class is assigned)
	ClassType    *ClassType
	InstructorID *string
	StartTime    types.TimeString
	EndTime      types.TimeString

	// len(ActiveReservations) == Occupancy
	ActiveReservations []string
}

// Clone returns a deep copy of the lane
func (l *Lane) Clone() Lane {
	c := *l
	c.ActiveReservations = append([]string(nil), l.ActiveReservations...)
	if c.ActiveReservations == nil {
		c.ActiveReservations = []string{}
	}
	if l.ClassType != nil {
		ct := *l.ClassType
		c.ClassType = &ct
	}
	if l.InstructorID != nil {
		id := *l.InstructorID
		c.InstructorID = &id
	}
	return c
}

// IsInMaintenance returns true if the lane is administratively offline
func (l *Lane) IsInMaintenance() bool {
	return l.Status == LaneMaintenance
}

// IsEmpty returns true if nobody is assigned to the lane
func (l *Lane) IsEmpty() bool {
	return l.Occupancy == 0
}

// HasTimeWindow returns true if a class time window is assigned
func (l *Lane) HasTimeWindow() bool {
	return !l.StartTime.IsZero() && !l.EndTime.IsZero()
}

// FreeSpots returns the remaining capacity of the lane
func (l *Lane) FreeSpots() int {
	if l.Occupancy >= l.Capacity {
		return 0
	}
	return l.Capacity - l.Occupancy
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (l *Lane) OccupancyRate() float64 {
	if l.Capacity == 0 {
		return 0
	}
	return float64(l.Occupancy) / float64(l.Capacity) * 100
}

// ClassAssignment данные класса, которые переносятся на дорожку при назначении
type ClassAssignment struct {
	ClassType       ClassType
	InstructorID    string
	Capacity        int
	StartTime       types.TimeString
	DurationMinutes int
}

// OccupancyStats aggregated occupancy of the whole pool
type OccupancyStats struct {
	TotalLanes         int
	TotalCapacity      int
	CurrentOccupancy   int
	OccupancyPercent   float64
	LanesInUse         int
	LanesInMaintenance int
	LanesAvailable     int
	RemainingCapacity  int
}
