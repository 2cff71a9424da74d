package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/schedule"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/calendar"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrShopNotFound         = errs.New("shop not found")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationConflict  = errs.New("reservation conflict")
	ErrSlotNotBookable      = errs.New("slot is not bookable")
	ErrSlotNotAligned       = errs.New("slot is not aligned to the shop grid")
	ErrInvalidTimeSlot      = errs.New("invalid time slot")
	ErrReservationForbidden = errs.New("reservation belongs to another user")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrDatabaseOperation    = errs.New("database operation failed")
)

const commitMaxRetries = 3

type CreateReservationParams struct {
	ShopID    uuid.UUID
	StartTime time.Time
	// DurationSlots is the sum of the selected service and option slot
	// counts; the end time is derived from the shop's slot interval.
	DurationSlots int
}

type CreateBlockParams struct {
	ShopID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	// AllDay blocks the whole business day; StartTime then only
	// carries the date.
	AllDay bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Actor, params CreateReservationParams) (*booking.Reservation, error)
	CancelReservation(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	CreateBlock(ctx context.Context, actor shared.Actor, params CreateBlockParams) (*booking.Reservation, error)
}

type reservationCommandsImpl struct {
	configReads      ShopConfigReads
	reservationReads ReservationReads
	reservationRepo  ReservationRepository
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewReservationCommands(
	configReads ShopConfigReads,
	reservationReads ReservationReads,
	reservationRepo ReservationRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		configReads:      configReads,
		reservationReads: reservationReads,
		reservationRepo:  reservationRepo,
		db:               db,
		clock:            clock,
	}
}

func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	actor shared.Actor,
	params CreateReservationParams,
) (*booking.Reservation, error) {
	cfg, err := c.loadConfig(ctx, params.ShopID)
	if err != nil {
		return nil, err
	}

	slot, err := buildSlot(cfg, params.StartTime, params.DurationSlots)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check against the render-time snapshot. A pass here
	// proves nothing about commit time; it only produces better errors
	// for stale grids.
	if err := c.advisoryCheck(ctx, cfg, params); err != nil {
		return nil, err
	}

	customerID := actor.UserID
	entity, err := booking.NewReservation(params.ShopID, &customerID, slot, booking.KindNormal, params.DurationSlots)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return c.commit(ctx, entity, true)
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	entity, err := c.reservationReads.ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if !actor.CanManageShop(entity.ShopID()) {
		owner := entity.CustomerID()
		if owner == nil || *owner != actor.UserID {
			return ErrReservationForbidden
		}
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, c.reservationRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (c *reservationCommandsImpl) CreateBlock(
	ctx context.Context,
	actor shared.Actor,
	params CreateBlockParams,
) (*booking.Reservation, error) {
	if !actor.CanManageShop(params.ShopID) {
		return nil, ErrReservationForbidden
	}

	cfg, err := c.loadConfig(ctx, params.ShopID)
	if err != nil {
		return nil, err
	}

	start, end := params.StartTime, params.EndTime
	if params.AllDay {
		day := calendar.DayStart(params.StartTime)
		hours, open := cfg.WeeklyHours.For(day.Weekday())
		if !open {
			return nil, ErrInvalidTimeSlot
		}
		start = hours.Open.OnDate(day)
		end = hours.Close.OnDate(day)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	totalSlots := int(slot.Duration().Minutes()) / cfg.SlotIntervalMin
	if totalSlots < 1 {
		totalSlots = 1
	}

	entity, err := booking.NewReservation(params.ShopID, nil, slot, booking.KindBlocked, totalSlots)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Blocks skip the conflict gate: admins may close over existing
	// bookings and resolve them manually.
	return c.commit(ctx, entity, false)
}

func (c *reservationCommandsImpl) loadConfig(ctx context.Context, shopID uuid.UUID) (*schedule.Config, error) {
	cfg, err := c.configReads.ConfigByShopID(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return cfg, nil
}

// buildSlot derives [start, start+slots*interval) and rejects starts
// that do not sit on the shop's slot grid.
func buildSlot(cfg *schedule.Config, start time.Time, durationSlots int) (booking.TimeSlot, error) {
	if durationSlots <= 0 {
		return booking.TimeSlot{}, ErrInvalidTimeSlot
	}

	hours, open := cfg.WeeklyHours.For(start.Weekday())
	if !open {
		return booking.TimeSlot{}, ErrSlotNotBookable
	}
	startMin := schedule.ClockTimeOf(start).Minutes()
	if (startMin-hours.Open.Minutes())%cfg.SlotIntervalMin != 0 {
		return booking.TimeSlot{}, ErrSlotNotAligned
	}

	end := start.Add(time.Duration(durationSlots*cfg.SlotIntervalMin) * time.Minute)
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	return slot, nil
}

func (c *reservationCommandsImpl) advisoryCheck(
	ctx context.Context,
	cfg *schedule.Config,
	params CreateReservationParams,
) error {
	day := calendar.DayStart(params.StartTime)
	existing, err := c.reservationReads.ReservationsByShopAndRange(ctx, params.ShopID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	result, err := availability.Classify(availability.Query{
		Date:            day,
		Now:             c.clock.Now().In(params.StartTime.Location()),
		Config:          *cfg,
		DurationSlots:   params.DurationSlots,
		OwnReservations: existing,
	}, schedule.ClockTimeOf(params.StartTime))
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if !result.Status.IsBookable() {
		if result.Status == availability.StatusBooked {
			return ErrReservationConflict
		}
		return errs.Wrap(ErrSlotNotBookable, result.Status.String())
	}
	return nil
}

// commit is the single authoritative write path: the shop row is
// locked, the conflict gate re-runs against the reservations as they
// exist inside the transaction, and the database exclusion constraint
// backstops anything the gate could still miss.
func (c *reservationCommandsImpl) commit(ctx context.Context, entity *booking.Reservation, gate bool) (*booking.Reservation, error) {
	slot := entity.TimeSlot()
	day := calendar.DayStart(slot.Start())

	_, err := shared.RunInTxWithRetry(ctx, c.db, commitMaxRetries, func(tx pgx.Tx) (uuid.UUID, error) {
		if err := c.reservationRepo.LockShop(ctx, tx, entity.ShopID()); err != nil {
			return uuid.Nil, err
		}

		if gate {
			latest, err := c.reservationRepo.ListByShopAndRangeForUpdate(ctx, tx, entity.ShopID(), day, day.AddDate(0, 0, 1))
			if err != nil {
				return uuid.Nil, err
			}
			if booking.HasConflict(slot, latest, uuid.Nil) {
				return uuid.Nil, ErrReservationConflict
			}
		}

		return c.reservationRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if errors.Is(err, ErrReservationConflict) || infra.IsKind(err, infra.KindConflict) {
			slog.InfoContext(ctx, "reservation commit lost the race",
				"shop_id", entity.ShopID(), "slot", slot.ToTstzrange())
			return nil, ErrReservationConflict
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return entity, nil
}
