package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a wall-clock time of day ("HH:MM"), stored as minutes
// since midnight. Slot arithmetic stays in minutes so that grids never
// depend on a concrete date or timezone.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return NewClockTime(hour, minute)
}

func MustClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(fmt.Sprintf("schedule: bad clock time %q", s))
	}
	return ct
}

func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) Hour() int { return c.minutes / 60 }

func (c ClockTime) Minute() int { return c.minutes % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Before(other ClockTime) bool { return c.minutes < other.minutes }

func (c ClockTime) After(other ClockTime) bool { return c.minutes > other.minutes }

func (c ClockTime) Equal(other ClockTime) bool { return c.minutes == other.minutes }

// AddMinutes may step past midnight; callers bound grids by close times
// so an overflowing value simply compares greater than any close.
func (c ClockTime) AddMinutes(m int) ClockTime {
	return ClockTime{minutes: c.minutes + m}
}

// OnDate anchors the clock time to a concrete calendar day.
func (c ClockTime) OnDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}
