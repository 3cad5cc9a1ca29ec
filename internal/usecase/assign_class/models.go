package assign_class

import "github.com/m04kA/SMC-PoolService/pkg/types"

// Request модель запроса на назначение класса на дорожку
type Request struct {
	ClassID    string // ID класса
	LaneNumber *int   // Номер дорожки (nil - первая пустая)
}

// Response модель ответа с назначенной дорожкой
type Response struct {
	ClassID      string
	LaneNumber   int
	ClassType    string
	InstructorID string
	StartTime    types.TimeString
	EndTime      types.TimeString
	LaneStatus   string
}
