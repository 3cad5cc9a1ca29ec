package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/service/reservations/models"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
	"github.com/m04kA/SMC-PoolService/pkg/ptr"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	repo := reservationRepo.NewRepository()
	for _, r := range []domain.Reservation{
		{ID: "r1", UserID: "u1", ClassID: "c1", LaneNumber: 1, ClassStartsAt: now.Add(time.Hour), Status: domain.ReservationConfirmed},
		{ID: "r2", UserID: "u1", ClassID: "c2", LaneNumber: 2, ClassStartsAt: now.Add(2 * time.Hour), Status: domain.ReservationCancelled},
		{ID: "r3", UserID: "u2", ClassID: "c1", LaneNumber: 1, ClassStartsAt: now.Add(time.Hour), Status: domain.ReservationConfirmed},
	} {
		r := r
		_, err := repo.Create(context.Background(), &r)
		require.NoError(t, err)
	}
	return NewService(repo, logger.NewNop())
}

func TestGetByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	r, err := svc.GetByID(ctx, "r1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", r.Status)
	assert.Equal(t, "Подтверждено", r.StatusLabel)

	_, err = svc.GetByID(ctx, "r1", "u2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, "nope", "u1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	all, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "r1", all.Reservations[0].ID)

	cancelled, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{UserID: "u1", Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	require.Equal(t, 1, cancelled.Total)
	assert.Equal(t, "r2", cancelled.Reservations[0].ID)

	_, err = svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{UserID: "u1", Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
