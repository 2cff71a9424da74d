package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind          = errors.New("invalid reservation kind")
	ErrInvalidDuration      = errors.New("reservation duration must cover at least one slot")
	ErrSlotNotAligned       = errors.New("reservation is not aligned to the slot grid")
	ErrReservationForbidden = errors.New("reservation belongs to another user")
)

type Reservation struct {
	id         uuid.UUID
	shopID     uuid.UUID
	customerID *uuid.UUID
	timeSlot   TimeSlot
	kind       Kind
	totalSlots int
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation builds a reservation for the commit path. totalSlots
// is informational (sum of selected service and option slot counts) and
// must be consistent with the slot interval for normal bookings; the
// usecase validates that before calling here.
func NewReservation(shopID uuid.UUID, customerID *uuid.UUID, slot TimeSlot, kind Kind, totalSlots int) (*Reservation, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if totalSlots <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Reservation{
		id:         uuid.New(),
		shopID:     shopID,
		customerID: customerID,
		timeSlot:   slot,
		kind:       kind,
		totalSlots: totalSlots,
	}, nil
}

func ReconstructReservation(
	id, shopID uuid.UUID,
	customerID *uuid.UUID,
	timeSlot TimeSlot,
	kind Kind,
	totalSlots int,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		shopID:     shopID,
		customerID: customerID,
		timeSlot:   timeSlot,
		kind:       kind,
		totalSlots: totalSlots,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// IsStructurallyValid rejects rows whose stored interval collapsed
// (end <= start). One inconsistent record must never make a whole day
// unclassifiable, so batch readers drop these instead of failing.
func (r *Reservation) IsStructurallyValid() bool {
	return r.timeSlot.Start().Before(r.timeSlot.End())
}

func (r *Reservation) IsBlocked() bool {
	return r.kind == KindBlocked
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ShopID() uuid.UUID      { return r.shopID }
func (r *Reservation) CustomerID() *uuid.UUID { return r.customerID }
func (r *Reservation) TimeSlot() TimeSlot     { return r.timeSlot }
func (r *Reservation) Kind() Kind             { return r.kind }
func (r *Reservation) TotalSlots() int        { return r.totalSlots }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
