package queries

import (
	"context"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/calendar"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrShopNotFound         = errs.New("shop not found")
	ErrInvalidScheduleQuery = errs.New("invalid schedule query")
	ErrScheduleReadFailed   = errs.New("failed to read schedule data")
)

// Read models (DTO for read side)
type SlotView struct {
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	OtherShop     bool       `json:"other_shop,omitempty"`
}

type DaySheet struct {
	ShopID uuid.UUID  `json:"shop_id"`
	Date   string     `json:"date"`
	Slots  []SlotView `json:"slots"`
}

// WeekSheet is the admin view: seven days from Start sharing one time
// axis (the union grid), sibling-shop reservations merged in.
type WeekSheet struct {
	ShopID uuid.UUID  `json:"shop_id"`
	Start  string     `json:"start"`
	Times  []string   `json:"times"`
	Days   []DaySheet `json:"days"`
}

type AvailabilityQueries interface {
	Day(ctx context.Context, shopID uuid.UUID, date time.Time, durationSlots int) (*DaySheet, error)
	Week(ctx context.Context, shopID uuid.UUID, start time.Time, durationSlots int) (*WeekSheet, error)
}

type ShopScheduleReadStore interface {
	ConfigByShopID(ctx context.Context, shopID uuid.UUID) (*schedule.Config, error)
}

type ReservationSnapshotReadStore interface {
	ReservationsByShopAndRange(ctx context.Context, shopID uuid.UUID, from, to time.Time) ([]*booking.Reservation, error)
	// SiblingReservationsByRange returns reservations of every shop
	// sharing syncID except excludeShopID itself.
	SiblingReservationsByRange(ctx context.Context, syncID uuid.UUID, excludeShopID uuid.UUID, from, to time.Time) ([]*booking.Reservation, error)
}

type availabilityQueriesImpl struct {
	shops        ShopScheduleReadStore
	reservations ReservationSnapshotReadStore
	clock        clock.Clock
}

func NewAvailabilityQueries(
	shops ShopScheduleReadStore,
	reservations ReservationSnapshotReadStore,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		shops:        shops,
		reservations: reservations,
		clock:        clock,
	}
}

func (q *availabilityQueriesImpl) Day(
	ctx context.Context,
	shopID uuid.UUID,
	date time.Time,
	durationSlots int,
) (*DaySheet, error) {
	cfg, err := q.loadConfig(ctx, shopID)
	if err != nil {
		return nil, err
	}

	day := calendar.DayStart(date)
	own, err := q.reservations.ReservationsByShopAndRange(ctx, shopID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleReadFailed)
	}

	slots, err := availability.ClassifyDay(availability.Query{
		Date:            day,
		Now:             q.clock.Now().In(day.Location()),
		Config:          *cfg,
		DurationSlots:   durationSlots,
		OwnReservations: own,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleQuery)
	}

	return &DaySheet{
		ShopID: shopID,
		Date:   calendar.FormatDate(day),
		Slots:  toSlotViews(slots),
	}, nil
}

func (q *availabilityQueriesImpl) Week(
	ctx context.Context,
	shopID uuid.UUID,
	start time.Time,
	durationSlots int,
) (*WeekSheet, error) {
	cfg, err := q.loadConfig(ctx, shopID)
	if err != nil {
		return nil, err
	}

	weekStart := calendar.DayStart(start)
	weekEnd := weekStart.AddDate(0, 0, 7)

	own, err := q.reservations.ReservationsByShopAndRange(ctx, shopID, weekStart, weekEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleReadFailed)
	}

	var siblings []*booking.Reservation
	if cfg.ScheduleSyncID != nil {
		siblings, err = q.reservations.SiblingReservationsByRange(ctx, *cfg.ScheduleSyncID, shopID, weekStart, weekEnd)
		if err != nil {
			return nil, errs.Mark(err, ErrScheduleReadFailed)
		}
	}

	grid := availability.UnionGrid(cfg.WeeklyHours, cfg.SlotIntervalMin)
	now := q.clock.Now().In(weekStart.Location())

	sheet := &WeekSheet{
		ShopID: shopID,
		Start:  calendar.FormatDate(weekStart),
		Times:  make([]string, len(grid)),
		Days:   make([]DaySheet, 0, 7),
	}
	for i, at := range grid {
		sheet.Times[i] = at.String()
	}

	for _, day := range calendar.WeekDates(weekStart) {
		slots, err := availability.ClassifyGrid(availability.Query{
			Date:                day,
			Now:                 now,
			Config:              *cfg,
			DurationSlots:       durationSlots,
			OwnReservations:     own,
			SiblingReservations: siblings,
		}, grid)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidScheduleQuery)
		}
		sheet.Days = append(sheet.Days, DaySheet{
			ShopID: shopID,
			Date:   calendar.FormatDate(day),
			Slots:  toSlotViews(slots),
		})
	}

	return sheet, nil
}

func (q *availabilityQueriesImpl) loadConfig(ctx context.Context, shopID uuid.UUID) (*schedule.Config, error) {
	cfg, err := q.shops.ConfigByShopID(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Mark(err, ErrScheduleReadFailed)
	}
	return cfg, nil
}

func toSlotViews(slots []availability.Slot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			Time:      s.Time.String(),
			Status:    s.Status.String(),
			OtherShop: s.OtherShop,
		}
		if s.Reservation != nil {
			id := s.Reservation.ID()
			views[i].ReservationID = &id
		}
	}
	return views
}
