//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ShopParams struct {
	Name                 string
	SlotIntervalMin      int
	BufferPreparationMin int
	MinLeadTimeHours     int
	AutoFillLogic        bool
	ScheduleSyncID       *uuid.UUID
}

// CreateTestShop inserts a shop open Monday through Saturday
// 09:00-18:00 unless hours are set up separately afterwards.
func CreateTestShop(t *testing.T, db DBLike, params ShopParams) uuid.UUID {
	t.Helper()

	if params.Name == "" {
		params.Name = "Test Shop"
	}
	if params.SlotIntervalMin == 0 {
		params.SlotIntervalMin = 30
	}

	shopID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO shops (id, name, slot_interval_min, buffer_preparation_min, min_lead_time_hours, auto_fill_logic, schedule_sync_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		shopID, params.Name, params.SlotIntervalMin, params.BufferPreparationMin,
		params.MinLeadTimeHours, params.AutoFillLogic, params.ScheduleSyncID)
	require.NoError(t, err)

	for weekday := 1; weekday <= 6; weekday++ {
		SetShopHours(t, db, shopID, weekday, "09:00", "18:00", nil, nil)
	}

	return shopID
}

func SetShopHours(t *testing.T, db DBLike, shopID uuid.UUID, weekday int, open, close string, restStart, restEnd *string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO shop_hours (shop_id, weekday, open_time, close_time, rest_start, rest_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (shop_id, weekday) DO UPDATE
		SET open_time = $3, close_time = $4, rest_start = $5, rest_end = $6`,
		shopID, weekday, open, close, restStart, restEnd)
	require.NoError(t, err)
}

func AddShopHoliday(t *testing.T, db DBLike, shopID uuid.UUID, pattern string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO shop_holidays (shop_id, pattern) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		shopID, pattern)
	require.NoError(t, err)
}

func CreateTestReservation(t *testing.T, db DBLike, shopID uuid.UUID, customerID *uuid.UUID, start, end time.Time, kind string, totalSlots int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, shop_id, customer_id, start_time, end_time, kind, total_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, shopID, customerID, start, end, kind, totalSlots)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
