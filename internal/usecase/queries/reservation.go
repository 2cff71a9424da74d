package queries

import (
	"context"
	"time"

	"booking-core/internal/infra"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationForbidden = errs.New("reservation belongs to another user")
	ErrInvalidCursor        = errs.New("invalid pagination cursor")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	ShopID     uuid.UUID  `json:"shop_id"`
	ShopName   string     `json:"shop_name"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Slot       string     `json:"slot"`
	Kind       string     `json:"kind"`
	TotalSlots int        `json:"total_slots"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	ShopID     uuid.UUID `json:"shop_id"`
	Slot       string    `json:"slot"`
	Kind       string    `json:"kind"`
	TotalSlots int       `json:"total_slots"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByShopAndDay(ctx context.Context, shopID uuid.UUID, day time.Time) ([]*ReservationListItem, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListViewsByShopAndRange(ctx context.Context, shopID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
	ListViewsByCustomerAfter(ctx context.Context, customerID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewReadStore
}

func NewReservationQueries(repo ReservationViewReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrScheduleReadFailed)
	}

	if !actor.CanManageShop(view.ShopID) {
		if view.CustomerID == nil || *view.CustomerID != actor.UserID {
			return nil, ErrReservationForbidden
		}
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByShopAndDay(ctx context.Context, shopID uuid.UUID, day time.Time) ([]*ReservationListItem, error) {
	from := day
	items, err := q.repo.ListViewsByShopAndRange(ctx, shopID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleReadFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	after *Cursor,
	limit int,
) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	afterCreatedAt := time.Time{}
	afterID := uuid.Nil
	if after != nil && after.After != "" {
		var err error
		afterCreatedAt, afterID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
	}

	// Fetch one extra row to decide whether a next page exists.
	rows, err := q.repo.ListViewsByCustomerAfter(ctx, customerID, afterCreatedAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, errs.Mark(err, ErrScheduleReadFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
