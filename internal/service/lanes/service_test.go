package lanes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	classRepo "github.com/m04kA/SMC-PoolService/internal/infra/storage/class"
	"github.com/m04kA/SMC-PoolService/internal/pool"
	"github.com/m04kA/SMC-PoolService/internal/service/lanes/models"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
	"github.com/m04kA/SMC-PoolService/pkg/ptr"
	"github.com/m04kA/SMC-PoolService/pkg/types"
)

func newService(t *testing.T) (*Service, *pool.Manager) {
	svc, registry, _ := newServiceWithClasses(t)
	return svc, registry
}

func newServiceWithClasses(t *testing.T, classes ...domain.SwimClass) (*Service, *pool.Manager, *classRepo.Repository) {
	t.Helper()
	registry := pool.NewManager(pool.WithLanes(4), pool.WithLaneCapacity(4))
	catalog, err := classRepo.NewRepository(classes)
	require.NoError(t, err)
	return NewService(registry, catalog, logger.NewNop()), registry, catalog
}

func assignMorningClass(t *testing.T, registry *pool.Manager, lane int) {
	t.Helper()
	require.NoError(t, registry.AssignClass(lane, domain.ClassAssignment{
		ClassType:       domain.ClassGroup,
		InstructorID:    "inst-1",
		Capacity:        2,
		StartTime:       types.TimeString("09:00"),
		DurationMinutes: 60,
	}))
}

func TestListLanes(t *testing.T) {
	svc, registry := newService(t)
	ctx := context.Background()
	require.NoError(t, registry.AddReservation(2, "r1"))
	require.NoError(t, registry.SetMaintenance(4))

	all, err := svc.ListLanes(ctx, &models.ListLanesRequest{})
	require.NoError(t, err)
	require.Equal(t, 4, all.Total)
	assert.Equal(t, 1, all.Lanes[0].Number)
	assert.Equal(t, "Свободна", all.Lanes[0].StatusLabel)
	assert.Equal(t, []string{}, all.Lanes[0].ActiveReservations)

	partial, err := svc.ListLanes(ctx, &models.ListLanesRequest{Status: ptr.Ptr("partially_occupied")})
	require.NoError(t, err)
	require.Equal(t, 1, partial.Total)
	assert.Equal(t, 2, partial.Lanes[0].Number)
	assert.Equal(t, 3, partial.Lanes[0].FreeSpots)
	assert.Equal(t, 25.0, partial.Lanes[0].OccupancyRate)

	_, err = svc.ListLanes(ctx, &models.ListLanesRequest{Status: ptr.Ptr("closed")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetLane(t *testing.T) {
	svc, registry := newService(t)
	assignMorningClass(t, registry, 3)

	lane, err := svc.GetLane(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, lane.ClassType)
	assert.Equal(t, "group", *lane.ClassType)
	assert.Equal(t, "Групповое занятие", *lane.ClassTypeLabel)
	assert.Equal(t, "09:00", *lane.StartTime)
	assert.Equal(t, "10:00", *lane.EndTime)

	_, err = svc.GetLane(context.Background(), 9)
	assert.ErrorIs(t, err, ErrLaneNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats(t *testing.T) {
	svc, registry := newService(t)
	require.NoError(t, registry.AddReservation(1, "r1"))
	require.NoError(t, registry.AddReservation(1, "r2"))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalLanes)
	assert.Equal(t, 16, stats.TotalCapacity)
	assert.Equal(t, 2, stats.CurrentOccupancy)
	assert.Equal(t, 12.5, stats.OccupancyPercent)
	assert.Equal(t, 14, stats.RemainingCapacity)
}

func TestMaintenanceLifecycle(t *testing.T) {
	svc, registry := newService(t)
	ctx := context.Background()

	lane, err := svc.SetMaintenance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "maintenance", lane.Status)

	lane, err = svc.ClearMaintenance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "available", lane.Status)

	_, err = svc.ClearMaintenance(ctx, 1)
	assert.ErrorIs(t, err, ErrLaneNotInMaintenance)

	require.NoError(t, registry.AddReservation(2, "r1"))
	_, err = svc.SetMaintenance(ctx, 2)
	assert.ErrorIs(t, err, ErrLaneOccupied)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	_, err = svc.SetMaintenance(ctx, 0)
	assert.ErrorIs(t, err, ErrLaneNotFound)
}

func TestReleaseLane(t *testing.T) {
	svc, registry := newService(t)
	assignMorningClass(t, registry, 1)
	require.NoError(t, registry.AddReservation(1, "r1"))

	lane, err := svc.ReleaseLane(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, lane.Occupancy)
	assert.Nil(t, lane.ClassType)
	assert.Nil(t, lane.StartTime)

	_, err = svc.ReleaseLane(context.Background(), 5)
	assert.ErrorIs(t, err, ErrLaneNotFound)
}

func TestReleaseLane_ClearsClassAssignments(t *testing.T) {
	svc, registry, catalog := newServiceWithClasses(t,
		domain.SwimClass{ID: "c1", ClassType: domain.ClassGroup, MaxCapacity: 2, DurationMinutes: 60},
		domain.SwimClass{ID: "c2", ClassType: domain.ClassGroup, MaxCapacity: 2, DurationMinutes: 60},
	)
	ctx := context.Background()
	assignMorningClass(t, registry, 1)
	_, err := catalog.SetAssignedLane(ctx, "c1", 1)
	require.NoError(t, err)
	_, err = catalog.SetAssignedLane(ctx, "c2", 2)
	require.NoError(t, err)

	_, err = svc.ReleaseLane(ctx, 1)
	require.NoError(t, err)

	c1, err := catalog.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c1.AssignedLane)

	c2, err := catalog.GetByID(ctx, "c2")
	require.NoError(t, err)
	require.NotNil(t, c2.AssignedLane)
	assert.Equal(t, 2, *c2.AssignedLane)
}

func TestCheckConflict(t *testing.T) {
	svc, registry := newService(t)
	assignMorningClass(t, registry, 1)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      models.ConflictRequest
		conflict bool
		wantErr  error
	}{
		{name: "overlap", req: models.ConflictRequest{LaneNumber: 1, Start: "09:30", DurationMinutes: 60}, conflict: true},
		{name: "touching", req: models.ConflictRequest{LaneNumber: 1, Start: "10:00", DurationMinutes: 30}},
		{name: "lane without class", req: models.ConflictRequest{LaneNumber: 2, Start: "09:00", DurationMinutes: 60}},
		{name: "bad time", req: models.ConflictRequest{LaneNumber: 1, Start: "9h", DurationMinutes: 60}, wantErr: ErrInvalidInput},
		{name: "bad duration", req: models.ConflictRequest{LaneNumber: 1, Start: "09:00"}, wantErr: ErrInvalidInput},
		{name: "unknown lane", req: models.ConflictRequest{LaneNumber: 7, Start: "09:00", DurationMinutes: 60}, wantErr: ErrLaneNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CheckConflict(ctx, &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.conflict, resp.Conflict)
		})
	}
}

func TestExportCSV(t *testing.T) {
	svc, registry := newService(t)
	assignMorningClass(t, registry, 1)
	require.NoError(t, registry.AddReservation(1, "r1"))
	require.NoError(t, registry.AddReservation(1, "r2"))

	out, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "lane,capacity,occupancy,status,class_type,instructor_id,start_time,end_time,active_reservations", lines[0])
	assert.Equal(t, "1,4,2,partially_occupied,group,inst-1,09:00,10:00,r1;r2", lines[1])
	assert.Equal(t, "2,4,0,available,,,,,", lines[2])
}
