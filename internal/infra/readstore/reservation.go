package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, shop_id, customer_id, start_time, end_time, kind, total_slots, created_at, updated_at`

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (r *ReservationReadStore) ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservationRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// ReservationsByShopAndRange returns every reservation touching
// [from,to), any kind. Structurally broken rows are logged here and
// filtered by the classification snapshot.
func (r *ReservationReadStore) ReservationsByShopAndRange(
	ctx context.Context,
	shopID uuid.UUID,
	from, to time.Time,
) ([]*booking.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE shop_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return r.collectReservations(ctx, rows)
}

func (r *ReservationReadStore) SiblingReservationsByRange(
	ctx context.Context,
	syncID uuid.UUID,
	excludeShopID uuid.UUID,
	from, to time.Time,
) ([]*booking.Reservation, error) {
	query := `
		SELECT r.id, r.shop_id, r.customer_id, r.start_time, r.end_time, r.kind, r.total_slots, r.created_at, r.updated_at
		FROM reservations r
		JOIN shops s ON s.id = r.shop_id
		WHERE s.schedule_sync_id = $1 AND r.shop_id <> $2
		  AND r.start_time < $4 AND r.end_time > $3
		ORDER BY r.start_time
	`

	rows, err := r.pool.Query(ctx, query, syncID, excludeShopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sibling reservations", err)
	}
	return r.collectReservations(ctx, rows)
}

func (r *ReservationReadStore) collectReservations(ctx context.Context, rows pgx.Rows) ([]*booking.Reservation, error) {
	defer rows.Close()

	var reservations []*booking.Reservation
	for rows.Next() {
		res, err := scanReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		if !res.IsStructurallyValid() {
			slog.WarnContext(ctx, "skipping structurally invalid reservation",
				"reservation_id", res.ID(), "shop_id", res.ShopID(),
				"start", res.TimeSlot().Start(), "end", res.TimeSlot().End())
			continue
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return reservations, nil
}

func scanReservationRow(row pgx.Row) (*booking.Reservation, error) {
	var (
		id, shopID           uuid.UUID
		customerID           *uuid.UUID
		startTime, endTime   time.Time
		kind                 string
		totalSlots           int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &shopID, &customerID, &startTime, &endTime, &kind, &totalSlots, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	slot := booking.ReconstructTimeSlot(startTime, endTime)
	return booking.ReconstructReservation(id, shopID, customerID, slot, booking.Kind(kind), totalSlots, createdAt, updatedAt), nil
}

// --- view queries (read-side DTOs) ---

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT r.id, r.shop_id, s.name, r.customer_id,
		       tstzrange(r.start_time, r.end_time, '[)')::text,
		       r.kind, r.total_slots, r.created_at, r.updated_at
		FROM reservations r
		JOIN shops s ON s.id = r.shop_id
		WHERE r.id = $1
	`

	var view queries.ReservationView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.ShopID,
		&view.ShopName,
		&view.CustomerID,
		&view.Slot,
		&view.Kind,
		&view.TotalSlots,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}

	return &view, nil
}

func (r *ReservationReadStore) ListViewsByShopAndRange(
	ctx context.Context,
	shopID uuid.UUID,
	from, to time.Time,
) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT id, shop_id, tstzrange(start_time, end_time, '[)')::text, kind, total_slots, created_at
		FROM reservations
		WHERE shop_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation views", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) ListViewsByCustomerAfter(
	ctx context.Context,
	customerID uuid.UUID,
	afterCreatedAt time.Time,
	afterID uuid.UUID,
	limit int32,
) ([]*queries.ReservationListItem, error) {
	// Keyset over (created_at, id) descending; a zero cursor selects
	// the first page.
	if afterCreatedAt.IsZero() {
		query := `
			SELECT id, shop_id, tstzrange(start_time, end_time, '[)')::text, kind, total_slots, created_at
			FROM reservations
			WHERE customer_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		`
		rows, err := r.pool.Query(ctx, query, customerID, limit)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list customer reservations", err)
		}
		return collectListItems(rows)
	}

	query := `
		SELECT id, shop_id, tstzrange(start_time, end_time, '[)')::text, kind, total_slots, created_at
		FROM reservations
		WHERE customer_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4
	`
	rows, err := r.pool.Query(ctx, query, customerID, afterCreatedAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer reservations", err)
	}
	return collectListItems(rows)
}

func collectListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(&item.ID, &item.ShopID, &item.Slot, &item.Kind, &item.TotalSlots, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation view rows", err)
	}

	return items, nil
}
