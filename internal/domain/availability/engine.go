package availability

import (
	"errors"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/pkg/calendar"
)

var (
	ErrInvalidDurationSlots = errors.New("requested duration must cover at least one slot")
	ErrInvalidConfig        = errors.New("invalid schedule configuration")
)

// Slot is the classification of one (date, time) pair. Reservation is
// set when the slot overlaps an existing booking, for display;
// OtherShop marks reservations merged in from a schedule-sibling shop.
type Slot struct {
	Time        schedule.ClockTime
	Status      Status
	Reservation *booking.Reservation
	OtherShop   bool
}

// Query is the immutable snapshot one classification runs against. The
// engine never reads ambient state: the clock, configuration and
// reservation lists all arrive here, so identical queries always
// classify identically.
type Query struct {
	Date time.Time
	Now  time.Time

	Config schedule.Config

	// DurationSlots is the prospective booking's length in grid steps
	// (sum of selected service and option slot counts).
	DurationSlots int

	// OwnReservations are the shop's reservations for Date, any kind.
	// Structurally invalid records (end <= start) are skipped.
	OwnReservations []*booking.Reservation

	// SiblingReservations come from shops sharing a scheduleSyncId.
	// They participate in overlap detection only; buffer and gap
	// suppression always apply to the owning shop's own bookings.
	SiblingReservations []*booking.Reservation
}

// Classify runs the ordered decision cascade for a single slot. The
// first matching rule wins; later rules are never consulted.
func Classify(q Query, at schedule.ClockTime) (Slot, error) {
	day, err := newDayContext(q)
	if err != nil {
		return Slot{}, err
	}
	return day.classify(at), nil
}

// ClassifyGrid classifies every slot of a prepared grid (a DayGrid for
// the customer view or a UnionGrid column for the admin week view)
// against the same snapshot.
func ClassifyGrid(q Query, grid []schedule.ClockTime) ([]Slot, error) {
	day, err := newDayContext(q)
	if err != nil {
		return nil, err
	}
	slots := make([]Slot, len(grid))
	for i, at := range grid {
		slots[i] = day.classify(at)
	}
	return slots, nil
}

// ClassifyDay builds the per-day grid for the queried date and
// classifies it.
func ClassifyDay(q Query) ([]Slot, error) {
	grid := DayGrid(q.Config.WeeklyHours, q.Date.Weekday(), q.Config.SlotIntervalMin)
	return ClassifyGrid(q, grid)
}

// dayContext carries the per-day derivations shared by every slot of
// one classification batch.
type dayContext struct {
	q        Query
	date     time.Time
	today    time.Time
	holiday  bool
	hours    schedule.DayHours
	open     bool
	own      []*booking.Reservation // structurally valid, any kind
	siblings []*booking.Reservation // structurally valid
	ownWork  []*booking.Reservation // own, normal kind: buffer and gap basis

	reclaim  map[int]struct{} // exempt preferred reclaim slots, by minute
	suppress map[int]struct{} // gap-suppression candidates, by minute
}

func newDayContext(q Query) (*dayContext, error) {
	if q.DurationSlots <= 0 {
		return nil, ErrInvalidDurationSlots
	}
	if err := q.Config.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	d := &dayContext{
		q:     q,
		date:  calendar.DayStart(q.Date),
		today: calendar.DayStart(q.Now),
	}
	d.holiday = q.Config.RegularHolidays.IsRegularHoliday(d.date)
	d.hours, d.open = q.Config.WeeklyHours.For(d.date.Weekday())

	d.own = structurallyValid(q.OwnReservations)
	d.siblings = structurallyValid(q.SiblingReservations)
	for _, r := range d.own {
		if !r.IsBlocked() {
			d.ownWork = append(d.ownWork, r)
		}
	}

	if q.Config.AutoFillLogic && d.open {
		d.buildSuppressionSets()
	}
	return d, nil
}

func structurallyValid(rs []*booking.Reservation) []*booking.Reservation {
	valid := make([]*booking.Reservation, 0, len(rs))
	for _, r := range rs {
		if r != nil && r.IsStructurallyValid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// buildSuppressionSets derives, per own working reservation, the
// preferred reclaim slot (earliest grid slot at/after end+buffer, kept
// fillable so a follow-on booking can start right after the buffer) and
// the two suppression candidates: the slot immediately after the
// reclaim slot and the slot three grid steps before the reservation
// start. A slot exempted by any reservation stays exempt even when
// another reservation flags it.
func (d *dayContext) buildSuppressionSets() {
	interval := d.q.Config.SlotIntervalMin
	openMin := d.hours.Open.Minutes()
	d.reclaim = make(map[int]struct{})
	d.suppress = make(map[int]struct{})

	for _, r := range d.ownWork {
		if !calendar.SameDay(r.TimeSlot().Start(), d.date) {
			continue
		}
		endBuf := schedule.ClockTimeOf(r.TimeSlot().End()).Minutes() + d.q.Config.BufferPreparationMin

		reclaimMin := openMin
		if endBuf > openMin {
			steps := (endBuf - openMin + interval - 1) / interval
			reclaimMin = openMin + steps*interval
		}
		d.reclaim[reclaimMin] = struct{}{}
		d.suppress[reclaimMin+interval] = struct{}{}
		d.suppress[schedule.ClockTimeOf(r.TimeSlot().Start()).Minutes()-3*interval] = struct{}{}
	}
}

func (d *dayContext) classify(at schedule.ClockTime) Slot {
	slot := Slot{Time: at}

	// 1. Regular holiday: terminal, reservations are irrelevant.
	if d.holiday {
		slot.Status = StatusClosedHoliday
		return slot
	}

	// 2. Business hours. Missing configuration degrades to closed.
	if !d.open || at.Before(d.hours.Open) || !at.Before(d.hours.Close) {
		slot.Status = StatusClosedHours
		return slot
	}

	// 3. Rest window.
	if d.hours.Rest != nil && d.hours.Rest.Contains(at) {
		slot.Status = StatusInRestPeriod
		return slot
	}

	// 4. Past / lead time.
	target := at.OnDate(d.date)
	if d.isPastOrTooSoon(target) {
		slot.Status = StatusPastOrTooSoon
		return slot
	}

	// 5. The requested duration must fit before close.
	potentialEnd := at.AddMinutes(d.q.DurationSlots * d.q.Config.SlotIntervalMin)
	if potentialEnd.After(d.hours.Close) {
		slot.Status = StatusInsufficientRemainingTime
		return slot
	}

	// 6. Direct overlap, own and sibling reservations alike.
	if r, other := d.overlapping(target); r != nil {
		slot.Status = StatusBooked
		slot.Reservation = r
		slot.OtherShop = other
		return slot
	}

	// 7. Preparation buffer after own bookings.
	if d.inBuffer(target) {
		slot.Status = StatusBufferBlocked
		return slot
	}

	// 8. Gap suppression.
	if d.isGapSuppressed(at) {
		slot.Status = StatusGapSuppressed
		return slot
	}

	slot.Status = StatusAvailable
	return slot
}

// isPastOrTooSoon applies the day-granular lead-time window: today's
// elapsed slots are past, and with a positive lead time every date up
// to today + floor(hours/24) days is unbookable. Sub-day precision is
// deliberately lost.
func (d *dayContext) isPastOrTooSoon(target time.Time) bool {
	if calendar.SameDay(d.date, d.today) && target.Before(d.q.Now) {
		return true
	}
	if d.q.Config.MinLeadTimeHours > 0 {
		limit := d.today.AddDate(0, 0, d.q.Config.MinLeadTimeHours/24)
		return !d.date.After(limit)
	}
	return d.date.Before(d.today)
}

// overlapping picks the reservation covering target. With multiple
// matches the exact-start match wins, then a blocked-kind one, then the
// first found, which keeps the multi-match state deterministic.
func (d *dayContext) overlapping(target time.Time) (*booking.Reservation, bool) {
	var (
		first        *booking.Reservation
		firstOther   bool
		blocked      *booking.Reservation
		blockedOther bool
	)
	scan := func(rs []*booking.Reservation, other bool) (*booking.Reservation, bool, bool) {
		for _, r := range rs {
			if !r.TimeSlot().Contains(target) {
				continue
			}
			if r.TimeSlot().Start().Equal(target) {
				return r, other, true
			}
			if first == nil {
				first, firstOther = r, other
			}
			if blocked == nil && r.IsBlocked() {
				blocked, blockedOther = r, other
			}
		}
		return nil, false, false
	}

	if r, other, exact := scan(d.own, false); exact {
		return r, other
	}
	if r, other, exact := scan(d.siblings, true); exact {
		return r, other
	}
	if blocked != nil {
		return blocked, blockedOther
	}
	return first, firstOther
}

func (d *dayContext) inBuffer(target time.Time) bool {
	if d.q.Config.BufferPreparationMin <= 0 {
		return false
	}
	buffer := time.Duration(d.q.Config.BufferPreparationMin) * time.Minute
	for _, r := range d.ownWork {
		end := r.TimeSlot().End()
		if !target.Before(end) && target.Before(end.Add(buffer)) {
			return true
		}
	}
	return false
}

func (d *dayContext) isGapSuppressed(at schedule.ClockTime) bool {
	if d.suppress == nil {
		return false
	}
	min := at.Minutes()
	if _, exempt := d.reclaim[min]; exempt {
		return false
	}
	_, hit := d.suppress[min]
	return hit
}
