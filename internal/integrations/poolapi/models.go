package poolapi

// Lane модель дорожки из PoolService
type Lane struct {
	Number             int      `json:"number"`
	Capacity           int      `json:"capacity"`
	Occupancy          int      `json:"occupancy"`
	FreeSpots          int      `json:"freeSpots"`
	OccupancyRate      float64  `json:"occupancyRate"`
	Status             string   `json:"status"`
	StatusLabel        string   `json:"statusLabel"`
	ClassType          *string  `json:"classType,omitempty"`
	InstructorID       *string  `json:"instructorId,omitempty"`
	StartTime          *string  `json:"startTime,omitempty"`
	EndTime            *string  `json:"endTime,omitempty"`
	ActiveReservations []string `json:"activeReservations"`
}

// LaneList список дорожек
type LaneList struct {
	Lanes []Lane `json:"lanes"`
	Total int    `json:"total"`
}

// Stats агрегированная занятость бассейна
type Stats struct {
	TotalLanes         int     `json:"totalLanes"`
	TotalCapacity      int     `json:"totalCapacity"`
	CurrentOccupancy   int     `json:"currentOccupancy"`
	OccupancyPercent   float64 `json:"occupancyPercent"`
	LanesInUse         int     `json:"lanesInUse"`
	LanesInMaintenance int     `json:"lanesInMaintenance"`
	LanesAvailable     int     `json:"lanesAvailable"`
	RemainingCapacity  int     `json:"remainingCapacity"`
}

// ErrorResponse модель ошибки от PoolService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
