//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ShopID     uuid.UUID
	CustomerID *uuid.UUID
	Start      time.Time
	End        time.Time
	Kind       booking.Kind
	TotalSlots int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	customerID := uuid.New()
	start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.Local).AddDate(0, 0, 7)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ShopID:     uuid.New(),
		CustomerID: &customerID,
		Start:      start,
		End:        start.Add(time.Hour),
		Kind:       booking.KindNormal,
		TotalSlots: 2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *booking.Reservation {
	return booking.ReconstructReservation(
		b.ID, b.ShopID, b.CustomerID,
		booking.ReconstructTimeSlot(b.Start, b.End),
		b.Kind, b.TotalSlots, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		ShopID:     b.ShopID,
		ShopName:   "Test Shop",
		CustomerID: b.CustomerID,
		Slot:       booking.ReconstructTimeSlot(b.Start, b.End).ToTstzrange(),
		Kind:       string(b.Kind),
		TotalSlots: b.TotalSlots,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:         b.ID,
		ShopID:     b.ShopID,
		Slot:       booking.ReconstructTimeSlot(b.Start, b.End).ToTstzrange(),
		Kind:       string(b.Kind),
		TotalSlots: b.TotalSlots,
		CreatedAt:  b.CreatedAt,
	}
}
