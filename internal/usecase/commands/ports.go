package commands

import (
	"context"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side ports. Snapshot reads for validation happen outside the
// transaction; everything taking a pgx.Tx re-reads the latest state
// inside it, which is what makes the conflict gate authoritative.

type ShopConfigReads interface {
	ConfigByShopID(ctx context.Context, shopID uuid.UUID) (*schedule.Config, error)
}

type ReservationReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	ReservationsByShopAndRange(ctx context.Context, shopID uuid.UUID, from, to time.Time) ([]*booking.Reservation, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *booking.Reservation) (uuid.UUID, error)
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	// LockShop serializes concurrent commits against one shop so the
	// in-transaction conflict check cannot race a sibling insert.
	LockShop(ctx context.Context, tx pgx.Tx, shopID uuid.UUID) error
	// ListByShopAndRangeForUpdate is the in-transaction latest read the
	// conflict gate runs against.
	ListByShopAndRangeForUpdate(ctx context.Context, tx pgx.Tx, shopID uuid.UUID, from, to time.Time) ([]*booking.Reservation, error)
}
