package classes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	"github.com/m04kA/SMC-PoolService/internal/service/classes/models"
)

// Service сервис каталога классов
type Service struct {
	classRepo ClassRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса классов
func NewService(classRepo ClassRepository, logger Logger) *Service {
	return &Service{
		classRepo: classRepo,
		logger:    logger,
	}
}

// ListClasses возвращает каталог с фильтрами по уровню и типу занятия
func (s *Service) ListClasses(ctx context.Context, req *models.ListClassesRequest) (*models.ClassListResponse, error) {
	var level *domain.SwimLevel
	var classType *domain.ClassType
	onlyOpen := false

	if req != nil {
		if req.Level != nil {
			l, err := domain.ParseSwimLevel(*req.Level)
			if err != nil {
				s.logger.Warn("ListClasses: invalid level=%s", *req.Level)
				return nil, fmt.Errorf("%w: invalid level", ErrInvalidInput)
			}
			level = &l
		}
		if req.ClassType != nil {
			ct, err := domain.ParseClassType(*req.ClassType)
			if err != nil {
				s.logger.Warn("ListClasses: invalid classType=%s", *req.ClassType)
				return nil, fmt.Errorf("%w: invalid class type", ErrInvalidInput)
			}
			classType = &ct
		}
		onlyOpen = req.OnlyOpen
	}

	all, err := s.classRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClasses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClasses - repository error: %v", ErrInternal, err)
	}

	filtered := make([]domain.SwimClass, 0, len(all))
	for _, c := range all {
		if level != nil && c.Level != *level {
			continue
		}
		if classType != nil && c.ClassType != *classType {
			continue
		}
		if onlyOpen && c.IsFull() {
			continue
		}
		filtered = append(filtered, c)
	}

	return models.FromDomainClassList(filtered), nil
}

// GetClass возвращает класс по ID
func (s *Service) GetClass(ctx context.Context, id string) (*models.ClassResponse, error) {
	c, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("GetClass: class id=%s not found", id)
			return nil, ErrClassNotFound
		}
		s.logger.Error("GetClass: repository error for class id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetClass - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainClass(*c)
	return &resp, nil
}
