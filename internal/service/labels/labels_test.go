package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PoolService/internal/domain"
)

func TestEveryValueHasLabel(t *testing.T) {
	for _, s := range domain.LaneStatuses {
		assert.NotEqual(t, string(s), LaneStatus(s), "lane status %s", s)
	}
	for _, ct := range domain.ClassTypes {
		assert.NotEqual(t, string(ct), ClassType(ct), "class type %s", ct)
	}
	for _, l := range domain.SwimLevels {
		assert.NotEqual(t, string(l), SwimLevel(l), "level %s", l)
	}
	for _, s := range []domain.ReservationStatus{
		domain.ReservationConfirmed,
		domain.ReservationPending,
		domain.ReservationCancelled,
		domain.ReservationCompleted,
	} {
		assert.NotEqual(t, string(s), ReservationStatus(s), "reservation status %s", s)
	}
}

func TestUnknownValueFallsBack(t *testing.T) {
	assert.Equal(t, "mystery", LaneStatus(domain.LaneStatus("mystery")))
}
