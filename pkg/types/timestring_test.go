package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid late", input: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:15").AddMinutes(50)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:05"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:01"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.True(t, TimeString("18:00").IsAfter("07:59"))
	assert.False(t, TimeString("").IsAfter("00:00"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 10, 16, 7, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
	assert.Equal(t, 7*60+5, ts.Minutes())
}
