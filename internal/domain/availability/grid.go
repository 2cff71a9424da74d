package availability

import (
	"time"

	"booking-core/internal/domain/schedule"
)

// Fallback axis for the admin week grid when no weekday opens at all.
var (
	defaultOpen  = schedule.MustClockTime("09:00")
	defaultClose = schedule.MustClockTime("18:00")
)

// DayGrid builds the slot start times for a single weekday: the stepped
// half-open sequence from open to close, close itself excluded. Closed
// weekdays yield an empty grid. This is the customer day-view axis.
func DayGrid(hours schedule.WeeklyHours, day time.Weekday, intervalMin int) []schedule.ClockTime {
	h, ok := hours.For(day)
	if !ok {
		return nil
	}
	return stepped(h.Open, h.Close, intervalMin)
}

// UnionGrid builds one consistent time axis for the admin week view:
// the earliest open to the latest close across every open weekday, so
// mixed weekday schedules share the same columns. With no open weekday
// the grid defaults to 09:00-18:00.
func UnionGrid(hours schedule.WeeklyHours, intervalMin int) []schedule.ClockTime {
	open, close, ok := hours.Span()
	if !ok {
		open, close = defaultOpen, defaultClose
	}
	return stepped(open, close, intervalMin)
}

func stepped(open, close schedule.ClockTime, intervalMin int) []schedule.ClockTime {
	if intervalMin <= 0 || !open.Before(close) {
		return nil
	}
	var grid []schedule.ClockTime
	for at := open; at.Before(close); at = at.AddMinutes(intervalMin) {
		grid = append(grid, at)
	}
	return grid
}
