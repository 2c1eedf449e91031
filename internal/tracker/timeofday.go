package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat reports an unparseable caller-supplied time
// string. It is returned, never logged-and-defaulted, so caller bugs
// stay visible.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// SecondsPerDay is the length of one timetable day.
const SecondsPerDay = 24 * 60 * 60

// TimeOfDay is a clock time normalized to seconds since midnight.
// All schedule arithmetic happens in this representation; values may
// exceed one day while a segment is being compared across midnight,
// and only String wraps back to a clock face.
type TimeOfDay int

// ParseTimeOfDay accepts HH:MM:SS.fff, HH:MM:SS and HH:MM. Fractional
// seconds are discarded. Anything else fails with ErrInvalidTimeFormat.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := s
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		trimmed = trimmed[:i]
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		fields[i] = v
	}

	h, m, sec := fields[0], fields[1], fields[2]
	if h > 23 || m > 59 || sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay(h*3600 + m*60 + sec), nil
}

// TimeOfDayFromClock builds a TimeOfDay from clock components. Used by
// fixtures; input is not range-checked.
func TimeOfDayFromClock(h, m, s int) TimeOfDay {
	return TimeOfDay(h*3600 + m*60 + s)
}

// TimeOfDayFromTime extracts the wall-clock time of day from t.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDayFromClock(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Seconds() int {
	return int(t)
}

// String formats the time as HH:MM:SS, wrapping values past midnight
// back onto the clock face.
func (t TimeOfDay) String() string {
	sec := int(t) % SecondsPerDay
	if sec < 0 {
		sec += SecondsPerDay
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}
