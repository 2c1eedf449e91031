package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"17:25:00", TimeOfDayFromClock(17, 25, 0)},
		{"17:25:00.500", TimeOfDayFromClock(17, 25, 0)},
		{"00:00:00", 0},
		{"23:59:59", TimeOfDayFromClock(23, 59, 59)},
		{"09:05", TimeOfDayFromClock(9, 5, 0)},
	}

	for _, tc := range tests {
		got, err := ParseTimeOfDay(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseTimeOfDayRejectsMalformedInput(t *testing.T) {
	inputs := []string{"", "17", "25:00:00", "17:60:00", "17:00:60", "noon", "17:2a:00", "-1:00:00"}

	for _, input := range inputs {
		_, err := ParseTimeOfDay(input)
		assert.True(t, errors.Is(err, ErrInvalidTimeFormat), "expected ErrInvalidTimeFormat for %q", input)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "17:25:00", TimeOfDayFromClock(17, 25, 0).String())
	assert.Equal(t, "00:00:00", TimeOfDay(0).String())

	// Values pushed past midnight by the overnight correction wrap
	// back onto the clock face.
	assert.Equal(t, "00:15:00", (TimeOfDayFromClock(0, 15, 0) + SecondsPerDay).String())
}

func TestTimeOfDayFromTime(t *testing.T) {
	moment := time.Date(2026, 8, 28, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeOfDayFromClock(14, 30, 45), TimeOfDayFromTime(moment))
}
