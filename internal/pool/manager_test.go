package pool

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PoolService/internal/domain"
	"github.com/m04kA/SMC-PoolService/pkg/types"
)

func assertInvariants(t *testing.T, m *Manager) {
	t.Helper()
	for _, lane := range m.ListLanes() {
		assert.GreaterOrEqual(t, lane.Occupancy, 0, "lane %d", lane.Number)
		assert.LessOrEqual(t, lane.Occupancy, lane.Capacity, "lane %d", lane.Number)
		assert.Len(t, lane.ActiveReservations, lane.Occupancy, "lane %d", lane.Number)
		if lane.Status != domain.LaneMaintenance {
			assert.Equal(t, domain.StatusForOccupancy(lane.Occupancy, lane.Capacity), lane.Status, "lane %d", lane.Number)
		}
	}
}

func fill(t *testing.T, m *Manager, lane, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, m.AddReservation(lane, fmt.Sprintf("r%d-%d", lane, i)))
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager()

	lanes := m.ListLanes()
	require.Len(t, lanes, domain.DefaultLaneCount)
	for i, lane := range lanes {
		assert.Equal(t, i+1, lane.Number)
		assert.Equal(t, domain.DefaultLaneCapacity, lane.Capacity)
		assert.Equal(t, domain.LaneAvailable, lane.Status)
		assert.Empty(t, lane.ActiveReservations)
	}
}

func TestNewManager_Options(t *testing.T) {
	m := NewManager(WithLanes(3), WithLaneCapacity(4))
	assert.Equal(t, 3, m.LaneCount())
	assert.Equal(t, 4, m.LaneCapacity())

	m = NewManager(WithLanes(-1), WithLaneCapacity(0))
	assert.Equal(t, 0, m.LaneCount())
	assert.Equal(t, domain.DefaultLaneCapacity, m.LaneCapacity())
}

func TestGetLane(t *testing.T) {
	m := NewManager()

	lane, ok := m.GetLane(3)
	require.True(t, ok)
	assert.Equal(t, 3, lane.Number)

	for _, n := range []int{0, -1, 9, 100} {
		_, ok := m.GetLane(n)
		assert.False(t, ok, "lane %d", n)
	}
}

func TestListLanes_ReturnsCopies(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddReservation(1, "r1"))

	lanes := m.ListLanes()
	lanes[0].Occupancy = 99
	lanes[0].ActiveReservations[0] = "hacked"
	lanes[0].Status = domain.LaneFull

	lane, _ := m.GetLane(1)
	assert.Equal(t, 1, lane.Occupancy)
	assert.Equal(t, []string{"r1"}, lane.ActiveReservations)
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status)
}

func TestScenarioA_PartialOccupancy(t *testing.T) {
	m := NewManager(WithLanes(8), WithLaneCapacity(6))
	fill(t, m, 1, 3)

	lane, _ := m.GetLane(1)
	assert.Equal(t, 3, lane.Occupancy)
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status)
	assert.Equal(t, 1, m.OccupancyStats().LanesInUse)
	assertInvariants(t, m)
}

func TestScenarioB_FullLaneRejectsSeventh(t *testing.T) {
	m := NewManager(WithLanes(8), WithLaneCapacity(6))
	fill(t, m, 1, 6)

	lane, _ := m.GetLane(1)
	assert.Equal(t, domain.LaneFull, lane.Status)

	err := m.AddReservation(1, "seventh")
	assert.ErrorIs(t, err, ErrLaneCannotAccommodate)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	lane, _ = m.GetLane(1)
	assert.Equal(t, 6, lane.Occupancy)
	assertInvariants(t, m)
}

func TestScenarioC_MaintenanceBlocksReservations(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.SetMaintenance(6))
	lane, _ := m.GetLane(6)
	assert.Equal(t, domain.LaneMaintenance, lane.Status)

	err := m.AddReservation(6, "x")
	assert.ErrorIs(t, err, ErrLaneInMaintenance)
	assert.False(t, m.CanAccommodate(6, 1))

	lane, _ = m.GetLane(6)
	assert.Equal(t, 0, lane.Occupancy)
	assert.Equal(t, domain.LaneMaintenance, lane.Status)
}

func TestCanAccommodate(t *testing.T) {
	m := NewManager(WithLaneCapacity(6))
	fill(t, m, 2, 4)

	assert.True(t, m.CanAccommodate(1, 6))
	assert.False(t, m.CanAccommodate(1, 7))
	assert.True(t, m.CanAccommodate(2, 2))
	assert.False(t, m.CanAccommodate(2, 3))
	assert.False(t, m.CanAccommodate(42, 1))
}

func TestFindBestAvailableLane(t *testing.T) {
	m := NewManager(WithLanes(4))

	n, ok := m.FindBestAvailableLane()
	require.True(t, ok)
	assert.Equal(t, 1, n)

	require.NoError(t, m.AddReservation(1, "r1"))
	require.NoError(t, m.SetMaintenance(2))

	n, ok = m.FindBestAvailableLane()
	require.True(t, ok)
	assert.Equal(t, 3, n, "partially occupied and maintenance lanes are skipped")

	require.NoError(t, m.AddReservation(3, "r3"))
	require.NoError(t, m.AddReservation(4, "r4"))

	_, ok = m.FindBestAvailableLane()
	assert.False(t, ok)

	require.NoError(t, m.RemoveReservation(1, "r1"))
	n, ok = m.FindBestAvailableLane()
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestFindBestAvailableLane_NoLanes(t *testing.T) {
	m := NewManager(WithLanes(0))
	_, ok := m.FindBestAvailableLane()
	assert.False(t, ok)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	m := NewManager()
	fill(t, m, 4, 2)
	before, _ := m.GetLane(4)

	require.NoError(t, m.AddReservation(4, "r1"))
	require.NoError(t, m.RemoveReservation(4, "r1"))

	after, _ := m.GetLane(4)
	assert.Equal(t, before.Occupancy, after.Occupancy)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.ActiveReservations, after.ActiveReservations)
}

func TestAddReservation_Errors(t *testing.T) {
	m := NewManager()

	assert.ErrorIs(t, m.AddReservation(0, "r"), ErrLaneNotFound)
	assert.ErrorIs(t, m.AddReservation(0, "r"), domain.ErrNotFound)

	require.NoError(t, m.AddReservation(1, "dup"))
	err := m.AddReservation(1, "dup")
	assert.ErrorIs(t, err, ErrReservationAlreadyInLane)

	lane, _ := m.GetLane(1)
	assert.Equal(t, 1, lane.Occupancy)
}

func TestRemoveReservation_Errors(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddReservation(1, "r1"))

	assert.ErrorIs(t, m.RemoveReservation(9, "r1"), ErrLaneNotFound)
	assert.ErrorIs(t, m.RemoveReservation(2, "r1"), ErrReservationNotInLane)
	assert.ErrorIs(t, m.RemoveReservation(1, "missing"), ErrReservationNotInLane)

	lane, _ := m.GetLane(1)
	assert.Equal(t, 1, lane.Occupancy)
}

func TestRemoveReservation_KeepsOrder(t *testing.T) {
	m := NewManager()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, m.AddReservation(1, id))
	}
	require.NoError(t, m.RemoveReservation(1, "b"))

	lane, _ := m.GetLane(1)
	assert.Equal(t, []string{"a", "c"}, lane.ActiveReservations)
}

func TestFullLaneBecomesPartialAfterRemoval(t *testing.T) {
	m := NewManager(WithLaneCapacity(2))
	fill(t, m, 1, 2)

	require.NoError(t, m.RemoveReservation(1, "r1-0"))
	lane, _ := m.GetLane(1)
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status)

	require.NoError(t, m.RemoveReservation(1, "r1-1"))
	lane, _ = m.GetLane(1)
	assert.Equal(t, domain.LaneAvailable, lane.Status)
}

func TestSetMaintenance(t *testing.T) {
	m := NewManager()
	fill(t, m, 2, 1)

	err := m.SetMaintenance(2)
	assert.ErrorIs(t, err, ErrLaneOccupied)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	lane, _ := m.GetLane(2)
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status, "status is unchanged after a failed toggle")

	assert.ErrorIs(t, m.SetMaintenance(99), ErrLaneNotFound)
	require.NoError(t, m.SetMaintenance(3))
	require.NoError(t, m.SetMaintenance(3), "setting maintenance twice on an empty lane is allowed")
}

func TestClearMaintenance(t *testing.T) {
	m := NewManager()

	assert.ErrorIs(t, m.ClearMaintenance(1), ErrLaneNotInMaintenance)
	assert.ErrorIs(t, m.ClearMaintenance(0), ErrLaneNotFound)

	require.NoError(t, m.SetMaintenance(1))
	require.NoError(t, m.ClearMaintenance(1))

	lane, _ := m.GetLane(1)
	assert.Equal(t, domain.LaneAvailable, lane.Status)
	assert.True(t, m.CanAccommodate(1, 1))
}

func TestReleaseLane(t *testing.T) {
	m := NewManager()
	fill(t, m, 5, 4)
	require.NoError(t, m.AssignClass(5, domain.ClassAssignment{
		ClassType:       domain.ClassGroup,
		InstructorID:    "inst-1",
		Capacity:        2,
		StartTime:       "10:00",
		DurationMinutes: 45,
	}))

	require.NoError(t, m.ReleaseLane(5))
	first, _ := m.GetLane(5)

	require.NoError(t, m.ReleaseLane(5))
	second, _ := m.GetLane(5)

	assert.Equal(t, first, second, "release is idempotent")
	assert.Equal(t, 0, second.Occupancy)
	assert.Equal(t, domain.LaneAvailable, second.Status)
	assert.Empty(t, second.ActiveReservations)
	assert.Nil(t, second.ClassType)
	assert.Nil(t, second.InstructorID)
	assert.True(t, second.StartTime.IsZero())
	assert.True(t, second.EndTime.IsZero())

	assert.ErrorIs(t, m.ReleaseLane(0), ErrLaneNotFound)
}

func TestReleaseLane_OverridesMaintenance(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.SetMaintenance(7))
	require.NoError(t, m.ReleaseLane(7))

	lane, _ := m.GetLane(7)
	assert.Equal(t, domain.LaneAvailable, lane.Status)
}

func TestAssignClass(t *testing.T) {
	m := NewManager(WithLaneCapacity(6))

	err := m.AssignClass(2, domain.ClassAssignment{
		ClassType:       domain.ClassAquaAerobics,
		InstructorID:    "inst-7",
		Capacity:        6,
		StartTime:       "18:30",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	lane, _ := m.GetLane(2)
	require.NotNil(t, lane.ClassType)
	assert.Equal(t, domain.ClassAquaAerobics, *lane.ClassType)
	require.NotNil(t, lane.InstructorID)
	assert.Equal(t, "inst-7", *lane.InstructorID)
	assert.Equal(t, types.TimeString("18:30"), lane.StartTime)
	assert.Equal(t, types.TimeString("19:30"), lane.EndTime)
	assert.Equal(t, 0, lane.Occupancy, "assignment does not change occupancy")
	assert.Equal(t, domain.LaneAvailable, lane.Status)
}

func TestAssignClass_Failures(t *testing.T) {
	valid := domain.ClassAssignment{
		ClassType:       domain.ClassGroup,
		InstructorID:    "inst-1",
		Capacity:        4,
		StartTime:       "09:00",
		DurationMinutes: 45,
	}

	t.Run("lane not found", func(t *testing.T) {
		m := NewManager()
		assert.ErrorIs(t, m.AssignClass(42, valid), ErrLaneNotFound)
	})

	t.Run("capacity too big", func(t *testing.T) {
		m := NewManager(WithLaneCapacity(6))
		fill(t, m, 1, 3)
		assert.ErrorIs(t, m.AssignClass(1, valid), ErrLaneCannotAccommodate)

		lane, _ := m.GetLane(1)
		assert.Nil(t, lane.ClassType)
	})

	t.Run("maintenance", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.SetMaintenance(1))
		assert.ErrorIs(t, m.AssignClass(1, valid), ErrLaneInMaintenance)
	})

	t.Run("window overflows midnight", func(t *testing.T) {
		m := NewManager()
		late := valid
		late.StartTime = "23:30"
		late.DurationMinutes = 60
		assert.ErrorIs(t, m.AssignClass(1, late), ErrInvalidAssignment)
	})

	t.Run("bad start time", func(t *testing.T) {
		m := NewManager()
		bad := valid
		bad.StartTime = "9am"
		assert.ErrorIs(t, m.AssignClass(1, bad), ErrInvalidAssignment)
	})
}

func TestUnassignClass(t *testing.T) {
	m := NewManager(WithLaneCapacity(6))
	require.NoError(t, m.AssignClass(2, domain.ClassAssignment{
		ClassType:       domain.ClassGroup,
		InstructorID:    "inst-1",
		Capacity:        6,
		StartTime:       "09:00",
		DurationMinutes: 60,
	}))
	fill(t, m, 2, 2)

	require.NoError(t, m.UnassignClass(2))

	lane, _ := m.GetLane(2)
	assert.Nil(t, lane.ClassType)
	assert.Nil(t, lane.InstructorID)
	assert.False(t, lane.HasTimeWindow())
	assert.Equal(t, 2, lane.Occupancy, "swimmers stay on the lane")
	assert.Equal(t, domain.LanePartiallyOccupied, lane.Status)

	assert.ErrorIs(t, m.UnassignClass(42), ErrLaneNotFound)
}

func TestOccupancyStats(t *testing.T) {
	m := NewManager(WithLanes(8), WithLaneCapacity(6))
	fill(t, m, 1, 6)
	fill(t, m, 2, 3)
	require.NoError(t, m.SetMaintenance(8))

	stats := m.OccupancyStats()
	assert.Equal(t, domain.OccupancyStats{
		TotalLanes:         8,
		TotalCapacity:      48,
		CurrentOccupancy:   9,
		OccupancyPercent:   18.75,
		LanesInUse:         2,
		LanesInMaintenance: 1,
		LanesAvailable:     5,
		RemainingCapacity:  39,
	}, stats)
}

func TestOccupancyStats_NoLanes(t *testing.T) {
	m := NewManager(WithLanes(0))

	stats := m.OccupancyStats()
	assert.Equal(t, 0, stats.TotalLanes)
	assert.Equal(t, 0.0, stats.OccupancyPercent)
}

func TestHasTimeConflict(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AssignClass(1, domain.ClassAssignment{
		ClassType:       domain.ClassGroup,
		InstructorID:    "inst-1",
		Capacity:        1,
		StartTime:       "10:00",
		DurationMinutes: 60,
	}))

	require.NoError(t, m.AssignClass(3, domain.ClassAssignment{
		ClassType:       domain.ClassFreeTraining,
		InstructorID:    "inst-2",
		Capacity:        1,
		StartTime:       "00:00",
		DurationMinutes: 60,
	}))

	at := func(h, min int) time.Time {
		return time.Date(2026, 10, 20, h, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		lane     int
		start    time.Time
		duration int
		want     bool
	}{
		{name: "overlaps start", lane: 1, start: at(9, 30), duration: 45, want: true},
		{name: "inside window", lane: 1, start: at(10, 15), duration: 15, want: true},
		{name: "covers window", lane: 1, start: at(9, 0), duration: 180, want: true},
		{name: "ends exactly at start", lane: 1, start: at(9, 0), duration: 60, want: false},
		{name: "starts exactly at end", lane: 1, start: at(11, 0), duration: 30, want: false},
		{name: "lane without window", lane: 2, start: at(10, 0), duration: 60, want: false},
		{name: "unknown lane", lane: 99, start: at(10, 0), duration: 60, want: false},
		{name: "wraps past midnight into window", lane: 3, start: at(23, 30), duration: 120, want: true},
		{name: "ends exactly at midnight", lane: 3, start: at(23, 0), duration: 60, want: false},
		{name: "wraps past midnight before window", lane: 1, start: at(23, 30), duration: 120, want: false},
		{name: "longer than a day", lane: 1, start: at(12, 0), duration: 24 * 60, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.HasTimeConflict(tt.lane, tt.start, tt.duration))
		})
	}
}

func TestObserverReceivesSnapshots(t *testing.T) {
	var got []domain.Lane
	m := NewManager(WithObserver(func(l domain.Lane) { got = append(got, l) }))

	require.NoError(t, m.AddReservation(3, "r1"))
	require.NoError(t, m.SetMaintenance(4))
	assert.Error(t, m.AddReservation(4, "r2"))

	require.Len(t, got, 2, "failed mutations are not observed")
	assert.Equal(t, 3, got[0].Number)
	assert.Equal(t, 1, got[0].Occupancy)
	assert.Equal(t, domain.LaneMaintenance, got[1].Status)
}

func TestConcurrentReservationsNeverExceedCapacity(t *testing.T) {
	m := NewManager(WithLanes(2), WithLaneCapacity(6))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := m.AddReservation(1, fmt.Sprintf("r%d", i)); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 6, success)
	assertInvariants(t, m)
}
