package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	reservationStore "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/policy"
	"github.com/m04kA/SMC-PoolService/internal/pool"
)

const metricsOperation = "create"

// UseCase use case для бронирования места в классе
type UseCase struct {
	classRepo       ClassRepository
	reservationRepo ReservationRepository
	lanes           LaneRegistry
	policy          ReservationPolicy
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	reservationRepo ReservationRepository,
	lanes LaneRegistry,
	reservationPolicy ReservationPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:       classRepo,
		reservationRepo: reservationRepo,
		lanes:           lanes,
		policy:          reservationPolicy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newID:           reservationStore.NewID,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования
// При ошибке на любом шаге после занятия места на дорожке место освобождается,
// а сделанное в этом вызове закрепление класса за дорожкой снимается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncReservation(metricsOperation, domain.Category(err))
	}()

	uc.logger.Info("CreateReservation: user=%s, class=%s", req.UserID, req.ClassID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем класс
	class, err := uc.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("CreateReservation: class id=%s not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("CreateReservation: failed to get class id=%s: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	// 3. Выбираем дорожку: желаемая -> назначенная классу -> первая пустая
	laneNumber, err := uc.chooseLane(req, class)
	if err != nil {
		uc.logger.Warn("CreateReservation: no lane for class id=%s: %v", class.ID, err)
		return nil, err
	}

	// 4. Проверяем правила бронирования для выбранной дорожки
	draft := domain.ReservationDraft{
		UserID:        req.UserID,
		ClassID:       req.ClassID,
		PreferredLane: &laneNumber,
		Notes:         req.Notes,
	}
	if err := uc.policy.ValidateReservation(draft, *class, uc.lanes); err != nil {
		uc.logger.Warn("CreateReservation: policy rejected class id=%s lane=%d: %v", class.ID, laneNumber, err)
		return nil, mapPolicyError(err)
	}

	// 5. Первое бронирование закрепляет класс за свободной дорожкой
	pinned, err := uc.pinClass(ctx, class, laneNumber)
	if err != nil {
		return nil, err
	}

	// 6. Занимаем место на дорожке
	reservationID := uc.newID()
	if err := uc.lanes.AddReservation(laneNumber, reservationID); err != nil {
		uc.logger.Warn("CreateReservation: lane=%d rejected reservation: %v", laneNumber, err)
		uc.unpinClass(ctx, class.ID, laneNumber, pinned)
		return nil, mapLaneError(err)
	}

	// 7. Увеличиваем счетчик мест в классе
	if _, err := uc.classRepo.IncrementReservations(ctx, class.ID); err != nil {
		uc.releaseLane(laneNumber, reservationID)
		uc.unpinClass(ctx, class.ID, laneNumber, pinned)
		if errors.Is(err, classRepo.ErrClassFull) {
			uc.logger.Warn("CreateReservation: class id=%s filled up concurrently", class.ID)
			return nil, ErrClassFull
		}
		uc.logger.Error("CreateReservation: failed to increment class id=%s: %v", class.ID, err)
		return nil, fmt.Errorf("%w: failed to update class: %v", ErrInternal, err)
	}

	// 8. Сохраняем бронирование
	reservation := &domain.Reservation{
		ID:            reservationID,
		UserID:        req.UserID,
		ClassID:       class.ID,
		LaneNumber:    laneNumber,
		ReservedAt:    uc.timeProvider.Now(),
		ClassStartsAt: class.StartsAt,
		Status:        domain.ReservationConfirmed,
		Notes:         req.Notes,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.releaseLane(laneNumber, reservationID)
		uc.unpinClass(ctx, class.ID, laneNumber, pinned)
		if _, rollbackErr := uc.classRepo.DecrementReservations(ctx, class.ID); rollbackErr != nil {
			uc.logger.Error("CreateReservation: failed to roll back class id=%s: %v", class.ID, rollbackErr)
		}
		uc.logger.Error("CreateReservation: failed to store reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to store reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: reservation id=%s created on lane=%d", created.ID, created.LaneNumber)

	return &Response{
		ID:            created.ID,
		UserID:        created.UserID,
		ClassID:       created.ClassID,
		ClassTitle:    class.Title,
		LaneNumber:    created.LaneNumber,
		Status:        string(created.Status),
		ReservedAt:    created.ReservedAt,
		ClassStartsAt: created.ClassStartsAt,
		Notes:         created.Notes,
	}, nil
}

// chooseLane выбирает дорожку для бронирования
func (uc *UseCase) chooseLane(req *Request, class *domain.SwimClass) (int, error) {
	if req.PreferredLane != nil {
		if _, ok := uc.lanes.GetLane(*req.PreferredLane); !ok {
			return 0, ErrLaneNotFound
		}
		return *req.PreferredLane, nil
	}
	if class.AssignedLane != nil {
		return *class.AssignedLane, nil
	}
	if lane, ok := uc.lanes.FindBestAvailableLane(); ok {
		return lane, nil
	}
	return 0, ErrNoLaneAvailable
}

// pinClass назначает класс без дорожки на выбранную дорожку, если на ней нет другого класса
// Возвращает true, если назначение выполнено в этом вызове
// Дорожка, которая не вмещает класс целиком, принимает бронирование без закрепления
func (uc *UseCase) pinClass(ctx context.Context, class *domain.SwimClass, laneNumber int) (bool, error) {
	if class.AssignedLane != nil {
		return false, nil
	}
	lane, ok := uc.lanes.GetLane(laneNumber)
	if !ok {
		return false, ErrLaneNotFound
	}
	if lane.ClassType != nil || lane.HasTimeWindow() {
		return false, nil
	}

	if err := uc.lanes.AssignClass(laneNumber, class.Assignment()); err != nil {
		if errors.Is(err, pool.ErrLaneCannotAccommodate) || errors.Is(err, pool.ErrInvalidAssignment) {
			uc.logger.Warn("CreateReservation: class id=%s not pinned to lane=%d: %v", class.ID, laneNumber, err)
			return false, nil
		}
		uc.logger.Warn("CreateReservation: lane=%d rejected class id=%s: %v", laneNumber, class.ID, err)
		return false, mapLaneError(err)
	}

	if _, err := uc.classRepo.SetAssignedLane(ctx, class.ID, laneNumber); err != nil {
		uc.logger.Error("CreateReservation: failed to store lane for class id=%s: %v", class.ID, err)
		if unassignErr := uc.lanes.UnassignClass(laneNumber); unassignErr != nil {
			uc.logger.Error("CreateReservation: failed to unassign lane=%d: %v", laneNumber, unassignErr)
		}
		return false, fmt.Errorf("%w: failed to update class: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: class id=%s pinned to lane=%d", class.ID, laneNumber)
	return true, nil
}

func (uc *UseCase) unpinClass(ctx context.Context, classID string, laneNumber int, pinned bool) {
	if !pinned {
		return
	}
	if err := uc.lanes.UnassignClass(laneNumber); err != nil {
		uc.logger.Error("CreateReservation: failed to unassign lane=%d: %v", laneNumber, err)
	}
	if _, err := uc.classRepo.ClearAssignedLane(ctx, classID); err != nil {
		uc.logger.Error("CreateReservation: failed to clear lane for class id=%s: %v", classID, err)
	}
}

func (uc *UseCase) releaseLane(laneNumber int, reservationID string) {
	if err := uc.lanes.RemoveReservation(laneNumber, reservationID); err != nil {
		uc.logger.Error("CreateReservation: failed to release lane=%d reservation=%s: %v", laneNumber, reservationID, err)
	}
}

func mapPolicyError(err error) error {
	switch {
	case errors.Is(err, policy.ErrClassFull):
		return ErrClassFull
	case errors.Is(err, policy.ErrLaneUnavailable):
		return ErrLaneUnavailable
	case errors.Is(err, policy.ErrTooLateToBook):
		return fmt.Errorf("%w: %v", ErrTooLateToBook, err)
	default:
		return fmt.Errorf("%w: policy check: %v", ErrInternal, err)
	}
}

func mapLaneError(err error) error {
	switch {
	case errors.Is(err, pool.ErrLaneNotFound):
		return ErrLaneNotFound
	case errors.Is(err, pool.ErrLaneCannotAccommodate), errors.Is(err, pool.ErrLaneInMaintenance):
		return ErrLaneUnavailable
	default:
		return fmt.Errorf("%w: add reservation: %v", ErrInternal, err)
	}
}
