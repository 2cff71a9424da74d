package availability

// Status is the closed classification for one (date, time) slot.
type Status string

const (
	StatusAvailable                 Status = "available"
	StatusClosedHoliday             Status = "closed_holiday"
	StatusClosedHours               Status = "closed_hours"
	StatusInRestPeriod              Status = "in_rest_period"
	StatusPastOrTooSoon             Status = "past_or_too_soon"
	StatusInsufficientRemainingTime Status = "insufficient_remaining_time"
	StatusBooked                    Status = "booked"
	StatusBufferBlocked             Status = "buffer_blocked"
	StatusGapSuppressed             Status = "gap_suppressed"
)

func (s Status) String() string {
	return string(s)
}

// IsBookable reports whether a booking may start at the slot.
func (s Status) IsBookable() bool {
	return s == StatusAvailable
}
