//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"roomescape-api/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartAt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "hour and minute", input: "10:30", want: "10:30"},
		{name: "with seconds", input: "10:30:15", want: "10:30:15"},
		{name: "zero seconds collapse to short form", input: "10:30:00", want: "10:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "empty", input: "", errIs: timeslot.ErrInvalidStartAt},
		{name: "hour out of range", input: "24:00", errIs: timeslot.ErrInvalidStartAt},
		{name: "garbage", input: "ten thirty", errIs: timeslot.ErrInvalidStartAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := timeslot.NewStartAt(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, at.String())
		})
	}
}

func TestStartAtOf(t *testing.T) {
	t.Run("valid components", func(t *testing.T) {
		at, err := timeslot.StartAtOf(9, 5, 0)
		require.NoError(t, err)
		assert.Equal(t, "09:05", at.String())
	})

	t.Run("out of range components", func(t *testing.T) {
		for _, c := range [][3]int{{-1, 0, 0}, {24, 0, 0}, {0, 60, 0}, {0, 0, 60}} {
			_, err := timeslot.StartAtOf(c[0], c[1], c[2])
			assert.ErrorIs(t, err, timeslot.ErrInvalidStartAt, "components %v", c)
		}
	})
}

func TestStartAtOn(t *testing.T) {
	at, err := timeslot.NewStartAt("10:30")
	require.NoError(t, err)

	got := at.On(2026, time.September, 1, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC), got)
}
