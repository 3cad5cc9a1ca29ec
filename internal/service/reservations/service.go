package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/service/reservations/models"
)

// Service сервис для просмотра бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainReservation(*reservation)
	return &resp, nil
}

// GetUserReservations получает бронирования пользователя, опционально с фильтром по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	var status *domain.ReservationStatus
	if req.Status != nil {
		st, err := domain.ParseReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	list, err := s.reservationRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	if status != nil {
		filtered := make([]domain.Reservation, 0, len(list))
		for _, r := range list {
			if r.Status == *status {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(list), req.UserID)
	return models.FromDomainReservationList(list), nil
}
