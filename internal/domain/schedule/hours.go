package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDayHours = errors.New("open time must be before close time")

// RestWindow is a mid-day break ([Start,End)) during which no slot may start.
type RestWindow struct {
	Start ClockTime
	End   ClockTime
}

func (r RestWindow) Contains(at ClockTime) bool {
	return !at.Before(r.Start) && at.Before(r.End)
}

// DayHours is one weekday's opening span. A weekday absent from
// WeeklyHours is closed all day.
type DayHours struct {
	Open  ClockTime
	Close ClockTime
	Rest  *RestWindow
}

func NewDayHours(open, close ClockTime, rest *RestWindow) (DayHours, error) {
	if !open.Before(close) {
		return DayHours{}, ErrInvalidDayHours
	}
	return DayHours{Open: open, Close: close, Rest: rest}, nil
}

type WeeklyHours map[time.Weekday]DayHours

// For returns the hours for a weekday; ok is false on closed days.
func (w WeeklyHours) For(day time.Weekday) (DayHours, bool) {
	h, ok := w[day]
	return h, ok
}

// Span returns the earliest open and latest close across all open days.
// ok is false when no weekday opens at all.
func (w WeeklyHours) Span() (open, close ClockTime, ok bool) {
	for _, h := range w {
		if !ok {
			open, close, ok = h.Open, h.Close, true
			continue
		}
		if h.Open.Before(open) {
			open = h.Open
		}
		if h.Close.After(close) {
			close = h.Close
		}
	}
	return open, close, ok
}
