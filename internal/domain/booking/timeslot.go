package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// TimeSlot is a half-open [start,end) interval in local wall-clock time.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rebuilds a stored interval without validation;
// IsStructurallyValid decides what to do with a collapsed one.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }

func (ts TimeSlot) End() time.Time { return ts.end }

func (ts TimeSlot) Duration() time.Duration { return ts.end.Sub(ts.start) }

func (ts TimeSlot) IsZero() bool { return ts.start.IsZero() && ts.end.IsZero() }

// Contains reports whether t falls inside the interval; the end bound
// is exclusive.
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

// Overlaps is the half-open interval test both the availability grid
// and the commit gate rely on.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
