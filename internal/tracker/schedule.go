package tracker

import (
	"database/sql"
	"time"
)

// StopCallKind distinguishes the three legal timing shapes of a stop:
// the first stop of a trip only departs, the last only arrives, and
// every intermediate stop does both.
type StopCallKind int

const (
	CallDepartureOnly StopCallKind = iota
	CallArrivalOnly
	CallBoth
)

// StopCall is the timing of one stop, as a tagged variant rather than
// a pair of nullable fields.
type StopCall struct {
	kind      StopCallKind
	arrival   TimeOfDay
	departure TimeOfDay
}

func NewDepartureCall(dep TimeOfDay) StopCall {
	return StopCall{kind: CallDepartureOnly, departure: dep}
}

func NewArrivalCall(arr TimeOfDay) StopCall {
	return StopCall{kind: CallArrivalOnly, arrival: arr}
}

func NewStopCall(arr, dep TimeOfDay) StopCall {
	return StopCall{kind: CallBoth, arrival: arr, departure: dep}
}

// StopCallFromNullable converts the stored nullable column pair into a
// call. Returns false when neither time is recorded; such a stop can
// never bracket a reference time.
func StopCallFromNullable(arrival, departure sql.NullInt64) (StopCall, bool) {
	switch {
	case arrival.Valid && departure.Valid:
		return NewStopCall(TimeOfDay(arrival.Int64), TimeOfDay(departure.Int64)), true
	case departure.Valid:
		return NewDepartureCall(TimeOfDay(departure.Int64)), true
	case arrival.Valid:
		return NewArrivalCall(TimeOfDay(arrival.Int64)), true
	default:
		return StopCall{}, false
	}
}

func (c StopCall) Kind() StopCallKind {
	return c.kind
}

func (c StopCall) Arrival() (TimeOfDay, bool) {
	if c.kind == CallArrivalOnly || c.kind == CallBoth {
		return c.arrival, true
	}
	return 0, false
}

func (c StopCall) Departure() (TimeOfDay, bool) {
	if c.kind == CallDepartureOnly || c.kind == CallBoth {
		return c.departure, true
	}
	return 0, false
}

// DepartureOrArrival is the segment-start time: the stop's departure,
// falling back to its arrival at a trip's terminus.
func (c StopCall) DepartureOrArrival() (TimeOfDay, bool) {
	if dep, ok := c.Departure(); ok {
		return dep, true
	}
	return c.Arrival()
}

// ArrivalOrDeparture is the segment-end time: the stop's arrival,
// falling back to its departure when no arrival is recorded.
func (c StopCall) ArrivalOrDeparture() (TimeOfDay, bool) {
	if arr, ok := c.Arrival(); ok {
		return arr, true
	}
	return c.Departure()
}

// WeekdayBit maps a date onto the recurrence mask bit position,
// Monday = 0 through Sunday = 6.
func WeekdayBit(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// RunsOnWeekday reports whether a trip's weekly mask covers the date.
func RunsOnWeekday(mask int, date time.Time) bool {
	return mask>>WeekdayBit(date)&1 == 1
}
