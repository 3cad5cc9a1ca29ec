package assign_class

import (
	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/service/labels"
	assignClass "github.com/m04kA/SMC-PoolService/internal/usecase/assign_class"
)

// AssignLaneRequest HTTP request model
type AssignLaneRequest struct {
	LaneNumber *int `json:"laneNumber,omitempty" validate:"omitempty,min=1"`
}

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	ClassID         string `json:"classId"`
	LaneNumber      int    `json:"laneNumber"`
	ClassType       string `json:"classType"`
	ClassTypeLabel  string `json:"classTypeLabel"`
	InstructorID    string `json:"instructorId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	LaneStatus      string `json:"laneStatus"`
	LaneStatusLabel string `json:"laneStatusLabel"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AssignLaneRequest) ToUseCaseRequest(classID string) *assignClass.Request {
	return &assignClass.Request{
		ClassID:    classID,
		LaneNumber: r.LaneNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignClass.Response) *AssignmentResponse {
	return &AssignmentResponse{
		ClassID:         resp.ClassID,
		LaneNumber:      resp.LaneNumber,
		ClassType:       resp.ClassType,
		ClassTypeLabel:  labels.ClassType(domain.ClassType(resp.ClassType)),
		InstructorID:    resp.InstructorID,
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		LaneStatus:      resp.LaneStatus,
		LaneStatusLabel: labels.LaneStatus(domain.LaneStatus(resp.LaneStatus)),
	}
}
