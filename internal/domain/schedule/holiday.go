package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booking-core/internal/pkg/calendar"
)

var ErrInvalidHolidayPattern = errors.New("invalid holiday pattern")

// HolidayPattern identifies a recurring monthly closure as
// "{week}-{weekday}", where week is 1..5, "L1" (last occurrence of the
// weekday in the month) or "L2" (second-to-last), and weekday is
// mon..sun. Example: "L1-mon" closes the last Monday of every month.
type HolidayPattern string

var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

var validWeekTokens = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "L1": {}, "L2": {},
}

func NewHolidayPattern(s string) (HolidayPattern, error) {
	week, weekday, ok := strings.Cut(s, "-")
	if !ok {
		return "", ErrInvalidHolidayPattern
	}
	if _, ok := validWeekTokens[week]; !ok {
		return "", ErrInvalidHolidayPattern
	}
	found := false
	for _, key := range weekdayKeys {
		if key == weekday {
			found = true
			break
		}
	}
	if !found {
		return "", ErrInvalidHolidayPattern
	}
	return HolidayPattern(s), nil
}

// HolidaySet is a shop's regular-holiday configuration.
type HolidaySet map[HolidayPattern]struct{}

func NewHolidaySet(patterns ...string) (HolidaySet, error) {
	set := make(HolidaySet, len(patterns))
	for _, p := range patterns {
		pattern, err := NewHolidayPattern(p)
		if err != nil {
			return nil, fmt.Errorf("holiday pattern %q: %w", p, err)
		}
		set[pattern] = struct{}{}
	}
	return set, nil
}

func (s HolidaySet) contains(week string, weekday time.Weekday) bool {
	_, ok := s[HolidayPattern(week+"-"+weekdayKeys[weekday])]
	return ok
}

// IsRegularHoliday resolves whether date falls on a configured regular
// holiday. A date matches through its literal nth-week key, through
// "L1" when it is the last occurrence of its weekday in the month, or
// through "L2" when it is the second-to-last. Redundant configuration
// (e.g. both "4-mon" and "L1-mon" in a four-Monday month) still counts
// as a single closed day.
func (s HolidaySet) IsRegularHoliday(date time.Time) bool {
	if len(s) == 0 {
		return false
	}
	weekday := date.Weekday()

	if s.contains(fmt.Sprintf("%d", calendar.NthWeekOfMonth(date)), weekday) {
		return true
	}
	if calendar.IsLastWeekdayOfMonth(date) && s.contains("L1", weekday) {
		return true
	}
	if calendar.IsSecondToLastWeekdayOfMonth(date) && s.contains("L2", weekday) {
		return true
	}
	return false
}
