package assign_class

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	"github.com/m04kA/SMC-PoolService/internal/pool"
)

// UseCase use case для назначения класса на дорожку
type UseCase struct {
	classRepo ClassRepository
	lanes     LaneRegistry
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(classes ClassRepository, lanes LaneRegistry, logger Logger) *UseCase {
	return &UseCase{
		classRepo: classes,
		lanes:     lanes,
		logger:    logger,
	}
}

// Execute выполняет use case назначения
// Повторное назначение на ту же дорожку ничего не меняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignClass: class=%s", req.ClassID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем класс
	class, err := uc.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("AssignClass: class id=%s not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("AssignClass: failed to get class id=%s: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	// 3. Определяем дорожку
	laneNumber, err := uc.chooseLane(req)
	if err != nil {
		uc.logger.Warn("AssignClass: no lane for class id=%s: %v", class.ID, err)
		return nil, err
	}

	// 4. Класс уже назначен. Назначение на дорожку без окна класса устарело
	if class.AssignedLane != nil && uc.hasStaleAssignment(*class.AssignedLane) {
		uc.logger.Warn("AssignClass: class id=%s has stale lane=%d, reassigning", class.ID, *class.AssignedLane)
		class.AssignedLane = nil
	}
	if class.AssignedLane != nil {
		if *class.AssignedLane != laneNumber {
			uc.logger.Warn("AssignClass: class id=%s already on lane=%d", class.ID, *class.AssignedLane)
			return nil, ErrAlreadyAssigned
		}
		lane, _ := uc.lanes.GetLane(laneNumber)
		return toResponse(class.ID, lane), nil
	}

	// 5. Проверяем пересечение по времени с классом, уже стоящим на дорожке
	if uc.lanes.HasTimeConflict(laneNumber, class.StartsAt, class.DurationMinutes) {
		uc.logger.Warn("AssignClass: class id=%s conflicts with lane=%d schedule", class.ID, laneNumber)
		return nil, ErrTimeConflict
	}

	// 6. Назначаем класс на дорожку
	if err := uc.lanes.AssignClass(laneNumber, class.Assignment()); err != nil {
		uc.logger.Warn("AssignClass: lane=%d rejected class id=%s: %v", laneNumber, class.ID, err)
		return nil, mapLaneError(err)
	}

	// 7. Запоминаем дорожку в каталоге
	if _, err := uc.classRepo.SetAssignedLane(ctx, class.ID, laneNumber); err != nil {
		uc.logger.Error("AssignClass: failed to store lane for class id=%s: %v", class.ID, err)
		return nil, fmt.Errorf("%w: failed to update class: %v", ErrInternal, err)
	}

	lane, _ := uc.lanes.GetLane(laneNumber)
	uc.logger.Info("AssignClass: class id=%s assigned to lane=%d (%s-%s)", class.ID, laneNumber, lane.StartTime, lane.EndTime)

	return toResponse(class.ID, lane), nil
}

func (uc *UseCase) chooseLane(req *Request) (int, error) {
	if req.LaneNumber != nil {
		if _, ok := uc.lanes.GetLane(*req.LaneNumber); !ok {
			return 0, ErrLaneNotFound
		}
		return *req.LaneNumber, nil
	}
	if lane, ok := uc.lanes.FindBestAvailableLane(); ok {
		return lane, nil
	}
	return 0, ErrNoLaneAvailable
}

func (uc *UseCase) hasStaleAssignment(laneNumber int) bool {
	lane, ok := uc.lanes.GetLane(laneNumber)
	return !ok || !lane.HasTimeWindow()
}

func toResponse(classID string, lane domain.Lane) *Response {
	resp := &Response{
		ClassID:    classID,
		LaneNumber: lane.Number,
		StartTime:  lane.StartTime,
		EndTime:    lane.EndTime,
		LaneStatus: string(lane.Status),
	}
	if lane.ClassType != nil {
		resp.ClassType = string(*lane.ClassType)
	}
	if lane.InstructorID != nil {
		resp.InstructorID = *lane.InstructorID
	}
	return resp
}

func mapLaneError(err error) error {
	switch {
	case errors.Is(err, pool.ErrLaneNotFound):
		return ErrLaneNotFound
	case errors.Is(err, pool.ErrLaneCannotAccommodate), errors.Is(err, pool.ErrLaneInMaintenance):
		return fmt.Errorf("%w: %v", ErrLaneUnavailable, err)
	case errors.Is(err, pool.ErrInvalidAssignment):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: assign class: %v", ErrInternal, err)
	}
}
