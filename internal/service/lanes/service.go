package lanes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/internal/pool"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
	"github.com/m04kA/SMC-PoolService/pkg/types"
)

// Service сервис для просмотра и администрирования дорожек
type Service struct {
	registry LaneRegistry
	classes  ClassAssignments
	logger   Logger
}

// NewService создает новый экземпляр сервиса дорожек
func NewService(registry LaneRegistry, classes ClassAssignments, logger Logger) *Service {
	return &Service{
		registry: registry,
		classes:  classes,
		logger:   logger,
	}
}

// ListLanes возвращает дорожки по возрастанию номера, опционально с фильтром по статусу
func (s *Service) ListLanes(ctx context.Context, req *models.ListLanesRequest) (*models.LaneListResponse, error) {
	lanes := s.registry.ListLanes()

	if req != nil && req.Status != nil {
		status, err := domain.ParseLaneStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListLanes: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}

		filtered := make([]domain.Lane, 0, len(lanes))
		for _, lane := range lanes {
			if lane.Status == status {
				filtered = append(filtered, lane)
			}
		}
		lanes = filtered
	}

	return models.FromDomainLaneList(lanes), nil
}

// GetLane возвращает дорожку по номеру
func (s *Service) GetLane(ctx context.Context, number int) (*models.LaneResponse, error) {
	lane, ok := s.registry.GetLane(number)
	if !ok {
		s.logger.Warn("GetLane: lane=%d not found", number)
		return nil, ErrLaneNotFound
	}

	resp := models.FromDomainLane(lane)
	return &resp, nil
}

// Stats возвращает агрегированную занятость
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	return models.FromDomainStats(s.registry.OccupancyStats()), nil
}

// ReleaseLane сбрасывает дорожку в исходное состояние
// Классы, назначенные на дорожку, остаются без дорожки
func (s *Service) ReleaseLane(ctx context.Context, number int) (*models.LaneResponse, error) {
	s.logger.Info("ReleaseLane: lane=%d", number)

	if err := s.registry.ReleaseLane(number); err != nil {
		return nil, s.mapRegistryError("ReleaseLane", number, err)
	}

	cleared, err := s.classes.ClearLaneAssignments(ctx, number)
	if err != nil {
		s.logger.Error("ReleaseLane: failed to clear class assignments for lane=%d: %v", number, err)
		return nil, fmt.Errorf("%w: clear class assignments: %v", ErrInternal, err)
	}
	if len(cleared) > 0 {
		s.logger.Info("ReleaseLane: lane=%d unassigned classes %v", number, cleared)
	}

	return s.GetLane(ctx, number)
}

// SetMaintenance переводит дорожку на обслуживание
func (s *Service) SetMaintenance(ctx context.Context, number int) (*models.LaneResponse, error) {
	s.logger.Info("SetMaintenance: lane=%d", number)

	if err := s.registry.SetMaintenance(number); err != nil {
		return nil, s.mapRegistryError("SetMaintenance", number, err)
	}

	return s.GetLane(ctx, number)
}

// ClearMaintenance возвращает дорожку в работу
func (s *Service) ClearMaintenance(ctx context.Context, number int) (*models.LaneResponse, error) {
	s.logger.Info("ClearMaintenance: lane=%d", number)

	if err := s.registry.ClearMaintenance(number); err != nil {
		return nil, s.mapRegistryError("ClearMaintenance", number, err)
	}

	return s.GetLane(ctx, number)
}

// CheckConflict проверяет, пересекается ли окно времени с классом на дорожке
func (s *Service) CheckConflict(ctx context.Context, req *models.ConflictRequest) (*models.ConflictResponse, error) {
	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes > domain.MaxClassDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be in (0, %d]", ErrInvalidInput, domain.MaxClassDurationMinutes)
	}
	if _, ok := s.registry.GetLane(req.LaneNumber); !ok {
		return nil, ErrLaneNotFound
	}

	// Реестр сравнивает только время суток, дата значения не имеет
	startAt := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(start.Minutes()) * time.Minute)

	return &models.ConflictResponse{
		LaneNumber: req.LaneNumber,
		Conflict:   s.registry.HasTimeConflict(req.LaneNumber, startAt, req.DurationMinutes),
	}, nil
}

// ExportCSV выгружает текущее состояние дорожек в CSV
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	lanes := s.registry.ListLanes()

	rows := make([]*models.LaneCSVRow, 0, len(lanes))
	for _, lane := range lanes {
		row := &models.LaneCSVRow{
			Number:             lane.Number,
			Capacity:           lane.Capacity,
			Occupancy:          lane.Occupancy,
			Status:             string(lane.Status),
			StartTime:          lane.StartTime.String(),
			EndTime:            lane.EndTime.String(),
			ActiveReservations: strings.Join(lane.ActiveReservations, ";"),
		}
		if lane.ClassType != nil {
			row.ClassType = string(*lane.ClassType)
		}
		if lane.InstructorID != nil {
			row.InstructorID = *lane.InstructorID
		}
		rows = append(rows, row)
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		s.logger.Error("ExportCSV: failed to marshal lanes: %v", err)
		return "", fmt.Errorf("%w: ExportCSV - marshal: %v", ErrInternal, err)
	}
	return out, nil
}

func (s *Service) mapRegistryError(op string, number int, err error) error {
	switch {
	case errors.Is(err, pool.ErrLaneNotFound):
		s.logger.Warn("%s: lane=%d not found", op, number)
		return ErrLaneNotFound
	case errors.Is(err, pool.ErrLaneOccupied):
		s.logger.Warn("%s: lane=%d is occupied", op, number)
		return fmt.Errorf("%w: %v", ErrLaneOccupied, err)
	case errors.Is(err, pool.ErrLaneNotInMaintenance):
		s.logger.Warn("%s: lane=%d is not in maintenance", op, number)
		return ErrLaneNotInMaintenance
	default:
		s.logger.Error("%s: registry error for lane=%d: %v", op, number, err)
		return fmt.Errorf("%w: %s - registry error: %v", ErrInternal, op, err)
	}
}
