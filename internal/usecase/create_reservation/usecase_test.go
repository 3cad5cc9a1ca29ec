package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	reservationStore "github.com/m04kA/SMC-PoolService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-PoolService/internal/policy"
	"github.com/m04kA/SMC-PoolService/internal/pool"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
	"github.com/m04kA/SMC-PoolService/pkg/ptr"
	"github.com/m04kA/SMC-PoolService/pkg/types"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return now }

type recordingMetrics struct {
	results []string
}

func (m *recordingMetrics) IncReservation(operation, result string) {
	m.results = append(m.results, operation+":"+result)
}

type failingReservations struct{}

func (failingReservations) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	return nil, errors.New("disk full")
}

type fixture struct {
	uc           *UseCase
	lanes        *pool.Manager
	classes      *classRepo.Repository
	reservations *reservationStore.Repository
	metrics      *recordingMetrics
}

func newFixture(t *testing.T, classes ...domain.SwimClass) *fixture {
	t.Helper()

	repo, err := classRepo.NewRepository(classes)
	require.NoError(t, err)

	f := &fixture{
		lanes:        pool.NewManager(),
		classes:      repo,
		reservations: reservationStore.NewRepository(),
		metrics:      &recordingMetrics{},
	}
	f.uc = NewUseCase(
		f.classes,
		f.reservations,
		f.lanes,
		policy.New(policy.WithTimeProvider(fixedClock{})),
		f.metrics,
		logger.NewNop(),
	)
	f.uc.timeProvider = fixedClock{}

	seq := 0
	f.uc.newID = func() string {
		seq++
		return fmt.Sprintf("r%d", seq)
	}
	return f
}

func swimClass(id string, capacity int, startsIn time.Duration) domain.SwimClass {
	return domain.SwimClass{
		ID:              id,
		Title:           "Class " + id,
		ClassType:       domain.ClassGroup,
		Level:           domain.LevelBeginner,
		DurationMinutes: 60,
		MaxCapacity:     capacity,
		InstructorID:    "inst-1",
		StartsAt:        now.Add(startsIn),
	}
}

func TestExecute_UsesFirstEmptyLane(t *testing.T) {
	f := newFixture(t, swimClass("c1", 6, 3*time.Hour))
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{UserID: "u1", ClassID: "c1", Notes: ptr.Ptr("hi")})
	require.NoError(t, err)

	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, 1, resp.LaneNumber)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Class c1", resp.ClassTitle)
	assert.Equal(t, now, resp.ReservedAt)
	assert.Equal(t, now.Add(3*time.Hour), resp.ClassStartsAt)

	lane, _ := f.lanes.GetLane(1)
	assert.Equal(t, 1, lane.Occupancy)
	assert.Equal(t, []string{"r1"}, lane.ActiveReservations)
	require.NotNil(t, lane.ClassType)
	assert.Equal(t, domain.ClassGroup, *lane.ClassType)
	assert.Equal(t, types.TimeString("15:00"), lane.StartTime)
	assert.Equal(t, types.TimeString("16:00"), lane.EndTime)

	class, err := f.classes.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, class.CurrentReservations)
	require.NotNil(t, class.AssignedLane)
	assert.Equal(t, 1, *class.AssignedLane)

	stored, err := f.reservations.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)

	assert.Equal(t, []string{"create:success"}, f.metrics.results)
}

func TestExecute_PrefersAssignedLane(t *testing.T) {
	f := newFixture(t, swimClass("c1", 6, 3*time.Hour))
	ctx := context.Background()
	_, err := f.classes.SetAssignedLane(ctx, "c1", 4)
	require.NoError(t, err)

	first, err := f.uc.Execute(ctx, &Request{UserID: "u1", ClassID: "c1"})
	require.NoError(t, err)
	second, err := f.uc.Execute(ctx, &Request{UserID: "u2", ClassID: "c1"})
	require.NoError(t, err)

	assert.Equal(t, 4, first.LaneNumber)
	assert.Equal(t, 4, second.LaneNumber)

	lane, _ := f.lanes.GetLane(4)
	assert.Equal(t, 2, lane.Occupancy)
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status)
}

func TestExecute_PreferredLaneWins(t *testing.T) {
	f := newFixture(t, swimClass("c1", 6, 3*time.Hour))
	ctx := context.Background()
	_, err := f.classes.SetAssignedLane(ctx, "c1", 4)
	require.NoError(t, err)

	resp, err := f.uc.Execute(ctx, &Request{UserID: "u1", ClassID: "c1", PreferredLane: ptr.Ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.LaneNumber)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *fixture)
		req     *Request
		wantErr error
		metric  string
	}{
		{
			name:    "missing user",
			req:     &Request{ClassID: "c1"},
			wantErr: ErrInvalidInput,
			metric:  "create:error",
		},
		{
			name:    "non positive lane",
			req:     &Request{UserID: "u1", ClassID: "c1", PreferredLane: ptr.Ptr(0)},
			wantErr: ErrInvalidInput,
			metric:  "create:error",
		},
		{
			name:    "unknown class",
			req:     &Request{UserID: "u1", ClassID: "nope"},
			wantErr: ErrClassNotFound,
			metric:  "create:not_found",
		},
		{
			name:    "unknown lane",
			req:     &Request{UserID: "u1", ClassID: "c1", PreferredLane: ptr.Ptr(99)},
			wantErr: ErrLaneNotFound,
			metric:  "create:not_found",
		},
		{
			name:    "too late",
			req:     &Request{UserID: "u1", ClassID: "soon"},
			wantErr: ErrTooLateToBook,
			metric:  "create:policy_violation",
		},
		{
			name: "lane in maintenance",
			setup: func(t *testing.T, f *fixture) {
				require.NoError(t, f.lanes.SetMaintenance(2))
			},
			req:     &Request{UserID: "u1", ClassID: "c1", PreferredLane: ptr.Ptr(2)},
			wantErr: ErrLaneUnavailable,
			metric:  "create:capacity_exceeded",
		},
		{
			name: "no empty lane left",
			setup: func(t *testing.T, f *fixture) {
				for n := 1; n <= f.lanes.LaneCount(); n++ {
					require.NoError(t, f.lanes.AddReservation(n, fmt.Sprintf("walk-in-%d", n)))
				}
			},
			req:     &Request{UserID: "u1", ClassID: "c1"},
			wantErr: ErrNoLaneAvailable,
			metric:  "create:capacity_exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, swimClass("c1", 6, 3*time.Hour), swimClass("soon", 6, 30*time.Minute))
			if tt.setup != nil {
				tt.setup(t, f)
			}

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.metric}, f.metrics.results)
		})
	}
}

func TestExecute_ClassFull(t *testing.T) {
	f := newFixture(t, swimClass("c1", 2, 3*time.Hour))
	ctx := context.Background()

	for _, user := range []string{"u1", "u2"} {
		_, err := f.uc.Execute(ctx, &Request{UserID: user, ClassID: "c1"})
		require.NoError(t, err)
	}

	_, err := f.uc.Execute(ctx, &Request{UserID: "u3", ClassID: "c1"})
	assert.ErrorIs(t, err, ErrClassFull)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	lane, _ := f.lanes.GetLane(1)
	assert.Equal(t, 2, lane.Occupancy)
	lane, _ = f.lanes.GetLane(2)
	assert.True(t, lane.IsEmpty(), "rejected reservation must not take a place")
}

func TestExecute_ClassStaysOnPinnedLane(t *testing.T) {
	f := newFixture(t, swimClass("c1", 6, 3*time.Hour), swimClass("c2", 6, 4*time.Hour))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		resp, err := f.uc.Execute(ctx, &Request{UserID: fmt.Sprintf("a%d", i), ClassID: "c1"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.LaneNumber)
	}
	for i := 0; i < 6; i++ {
		resp, err := f.uc.Execute(ctx, &Request{UserID: fmt.Sprintf("b%d", i), ClassID: "c2"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.LaneNumber)
	}

	stats := f.lanes.OccupancyStats()
	assert.Equal(t, 9, stats.CurrentOccupancy)
	assert.Equal(t, 2, stats.LanesInUse)
	assert.Equal(t, 6, stats.LanesAvailable)

	c2, err := f.classes.GetByID(ctx, "c2")
	require.NoError(t, err)
	require.NotNil(t, c2.AssignedLane)
	assert.Equal(t, 2, *c2.AssignedLane)
}

func TestExecute_PinsPreferredEmptyLane(t *testing.T) {
	f := newFixture(t, swimClass("c1", 6, 3*time.Hour))
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, &Request{UserID: "u1", ClassID: "c1", PreferredLane: ptr.Ptr(5)})
	require.NoError(t, err)
	second, err := f.uc.Execute(ctx, &Request{UserID: "u2", ClassID: "c1"})
	require.NoError(t, err)

	assert.Equal(t, 5, first.LaneNumber)
	assert.Equal(t, 5, second.LaneNumber)
}

func TestExecute_OversizedClassIsNotPinned(t *testing.T) {
	f := newFixture(t, swimClass("big", 10, 3*time.Hour))
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{UserID: "u1", ClassID: "big"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LaneNumber)

	lane, _ := f.lanes.GetLane(1)
	assert.Nil(t, lane.ClassType)
	assert.Equal(t, 1, lane.Occupancy)

	class, err := f.classes.GetByID(ctx, "big")
	require.NoError(t, err)
	assert.Nil(t, class.AssignedLane)
}

func TestExecute_FullLaneRejectsSeventh(t *testing.T) {
	f := newFixture(t, swimClass("c1", 10, 3*time.Hour))
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := f.uc.Execute(ctx, &Request{UserID: fmt.Sprintf("u%d", i), ClassID: "c1", PreferredLane: ptr.Ptr(3)})
		require.NoError(t, err)
	}

	_, err := f.uc.Execute(ctx, &Request{UserID: "u7", ClassID: "c1", PreferredLane: ptr.Ptr(3)})
	assert.ErrorIs(t, err, ErrLaneUnavailable)

	lane, _ := f.lanes.GetLane(3)
	assert.Equal(t, 6, lane.Occupancy)
	assert.Equal(t, domain.LaneFull, lane.Status)
}

func TestExecute_RollsBackWhenStoreFails(t *testing.T) {
	repo, err := classRepo.NewRepository([]domain.SwimClass{swimClass("c1", 6, 3*time.Hour)})
	require.NoError(t, err)
	lanes := pool.NewManager()
	metrics := &recordingMetrics{}

	uc := NewUseCase(repo, failingReservations{}, lanes,
		policy.New(policy.WithTimeProvider(fixedClock{})), metrics, logger.NewNop())

	_, err = uc.Execute(context.Background(), &Request{UserID: "u1", ClassID: "c1"})
	assert.ErrorIs(t, err, ErrInternal)

	lane, _ := lanes.GetLane(1)
	assert.Equal(t, 0, lane.Occupancy)
	assert.Empty(t, lane.ActiveReservations)
	assert.Nil(t, lane.ClassType, "class is unpinned on rollback")
	assert.False(t, lane.HasTimeWindow())

	class, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, class.CurrentReservations)
	assert.Nil(t, class.AssignedLane)
	assert.Equal(t, []string{"create:error"}, metrics.results)
}
