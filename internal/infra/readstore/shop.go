package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShopReadStore struct {
	pool *pgxpool.Pool
}

func NewShopReadStore(pool *pgxpool.Pool) *ShopReadStore {
	return &ShopReadStore{pool: pool}
}

// ConfigByShopID assembles the full schedule configuration from the
// shops, shop_hours and shop_holidays tables. Malformed hour or holiday
// rows are dropped with a warning; a day without a valid row is simply
// closed.
func (r *ShopReadStore) ConfigByShopID(ctx context.Context, shopID uuid.UUID) (*schedule.Config, error) {
	query := `
		SELECT id, open_on_public_holiday, slot_interval_min, buffer_preparation_min,
		       min_lead_time_hours, auto_fill_logic, schedule_sync_id
		FROM shops
		WHERE id = $1
	`

	cfg := schedule.Config{}
	err := r.pool.QueryRow(ctx, query, shopID).Scan(
		&cfg.ShopID,
		&cfg.OpenOnPublicHoliday,
		&cfg.SlotIntervalMin,
		&cfg.BufferPreparationMin,
		&cfg.MinLeadTimeHours,
		&cfg.AutoFillLogic,
		&cfg.ScheduleSyncID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}

	cfg.WeeklyHours, err = r.weeklyHours(ctx, shopID)
	if err != nil {
		return nil, err
	}
	cfg.RegularHolidays, err = r.holidaySet(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r *ShopReadStore) weeklyHours(ctx context.Context, shopID uuid.UUID) (schedule.WeeklyHours, error) {
	query := `
		SELECT weekday, open_time, close_time, rest_start, rest_end
		FROM shop_hours
		WHERE shop_id = $1
	`

	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop hours", err)
	}
	defer rows.Close()

	hours := schedule.WeeklyHours{}
	for rows.Next() {
		var (
			weekday            int
			openStr, closeStr  string
			restStart, restEnd *string
		)
		if err := rows.Scan(&weekday, &openStr, &closeStr, &restStart, &restEnd); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop hours", err)
		}

		day, ok := parseDayHours(openStr, closeStr, restStart, restEnd)
		if !ok || weekday < 0 || weekday > 6 {
			slog.WarnContext(ctx, "dropping malformed shop_hours row",
				"shop_id", shopID, "weekday", weekday, "open", openStr, "close", closeStr)
			continue
		}
		hours[time.Weekday(weekday)] = day
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shop hours rows", err)
	}

	return hours, nil
}

func parseDayHours(openStr, closeStr string, restStart, restEnd *string) (schedule.DayHours, bool) {
	open, err := schedule.ParseClockTime(openStr)
	if err != nil {
		return schedule.DayHours{}, false
	}
	closeAt, err := schedule.ParseClockTime(closeStr)
	if err != nil {
		return schedule.DayHours{}, false
	}

	var rest *schedule.RestWindow
	if restStart != nil && restEnd != nil {
		start, err := schedule.ParseClockTime(*restStart)
		if err != nil {
			return schedule.DayHours{}, false
		}
		end, err := schedule.ParseClockTime(*restEnd)
		if err != nil {
			return schedule.DayHours{}, false
		}
		rest = &schedule.RestWindow{Start: start, End: end}
	}

	day, err := schedule.NewDayHours(open, closeAt, rest)
	if err != nil {
		return schedule.DayHours{}, false
	}
	return day, true
}

func (r *ShopReadStore) holidaySet(ctx context.Context, shopID uuid.UUID) (schedule.HolidaySet, error) {
	rows, err := r.pool.Query(ctx, `SELECT pattern FROM shop_holidays WHERE shop_id = $1`, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop holidays", err)
	}
	defer rows.Close()

	set := schedule.HolidaySet{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop holiday", err)
		}
		pattern, err := schedule.NewHolidayPattern(raw)
		if err != nil {
			slog.WarnContext(ctx, "dropping malformed shop_holidays row",
				"shop_id", shopID, "pattern", raw)
			continue
		}
		set[pattern] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shop holiday rows", err)
	}

	return set, nil
}
