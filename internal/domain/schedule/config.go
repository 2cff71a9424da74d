package schedule

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlotInterval = errors.New("slot interval must be positive")
	ErrNegativeBuffer      = errors.New("preparation buffer cannot be negative")
	ErrNegativeLeadTime    = errors.New("lead time cannot be negative")
)

// Config is a shop's full booking-schedule configuration. It is owned
// by the shop aggregate and read-only to the availability engine.
type Config struct {
	ShopID          uuid.UUID
	WeeklyHours     WeeklyHours
	RegularHolidays HolidaySet

	// OpenOnPublicHoliday is stored for the admin UI but never
	// evaluated by the engine; public-holiday calendars are out of
	// scope.
	OpenOnPublicHoliday bool

	SlotIntervalMin      int
	BufferPreparationMin int
	MinLeadTimeHours     int

	// AutoFillLogic enables the gap-suppression heuristic that hides
	// slots which would strand an unusably small idle interval next to
	// an existing reservation.
	AutoFillLogic bool

	// ScheduleSyncID links shops whose reservations are merged for
	// overlap display. Nil when the shop shares with nobody.
	ScheduleSyncID *uuid.UUID
}

func (c Config) Validate() error {
	if c.SlotIntervalMin <= 0 {
		return ErrInvalidSlotInterval
	}
	if c.BufferPreparationMin < 0 {
		return ErrNegativeBuffer
	}
	if c.MinLeadTimeHours < 0 {
		return ErrNegativeLeadTime
	}
	return nil
}
