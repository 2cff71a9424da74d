package repository

import (
	"context"
	"errors"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyViolated = "23503"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgx.Tx, res *booking.Reservation) (uuid.UUID, error) {
	query := `
		INSERT INTO reservations (id, shop_id, customer_id, start_time, end_time, kind, total_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(
		ctx, query,
		res.ID(),
		res.ShopID(),
		res.CustomerID(),
		res.TimeSlot().Start(),
		res.TimeSlot().End(),
		string(res.Kind()),
		res.TotalSlots(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation, pgErrCodeUniqueViolation:
				// The exclusion constraint is the database-level backstop
				// behind the in-transaction conflict gate.
				return uuid.Nil, infra.WrapRepoErr("reservation overlaps an existing one", err, infra.KindConflict)
			case pgErrCodeForeignKeyViolated:
				return uuid.Nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if result.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockShop takes the shop row lock every commit path agrees on, so two
// transactions can never gate against the same snapshot concurrently.
func (r *ReservationRepository) LockShop(ctx context.Context, tx pgx.Tx, shopID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM shops WHERE id = $1 FOR UPDATE`, shopID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock shop", err)
	}
	return nil
}

func (r *ReservationRepository) ListByShopAndRangeForUpdate(
	ctx context.Context,
	tx pgx.Tx,
	shopID uuid.UUID,
	from, to time.Time,
) ([]*booking.Reservation, error) {
	query := `
		SELECT id, shop_id, customer_id, start_time, end_time, kind, total_slots, created_at, updated_at
		FROM reservations
		WHERE shop_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for update", err)
	}
	defer rows.Close()

	var reservations []*booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return reservations, nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
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

	// Reconstruct never validates: structurally broken rows are kept
	// here and filtered by the classification snapshot, which logs them.
	slot := booking.ReconstructTimeSlot(startTime, endTime)
	return booking.ReconstructReservation(id, shopID, customerID, slot, booking.Kind(kind), totalSlots, createdAt, updatedAt), nil
}
