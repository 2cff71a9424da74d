package calendar

import "time"

const DateLayout = "2006-01-02"

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// NthWeekOfMonth returns which occurrence of its weekday the date is
// within the month (1-based): ceil(dayOfMonth / 7).
func NthWeekOfMonth(t time.Time) int {
	return (t.Day() + 6) / 7
}

// IsLastWeekdayOfMonth reports whether the date is the final occurrence
// of its weekday in the month: one week later lands in the next month.
func IsLastWeekdayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 7).Month() != t.Month()
}

// IsSecondToLastWeekdayOfMonth reports whether the date is the
// second-to-last occurrence of its weekday in the month. The last
// occurrence itself never qualifies.
func IsSecondToLastWeekdayOfMonth(t time.Time) bool {
	if IsLastWeekdayOfMonth(t) {
		return false
	}
	return t.AddDate(0, 0, 14).Month() != t.Month()
}

// WeekDates returns the seven consecutive days starting at start,
// truncated to day boundaries.
func WeekDates(start time.Time) []time.Time {
	base := DayStart(start)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = base.AddDate(0, 0, i)
	}
	return days
}
