package response

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID  `json:"id"`
	ShopID     uuid.UUID  `json:"shopId"`
	ShopName   string     `json:"shopName,omitempty"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
	Slot       string     `json:"slot"`
	Kind       string     `json:"kind"`
	TotalSlots int        `json:"totalSlots"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	ShopID     uuid.UUID `json:"shopId"`
	Slot       string    `json:"slot"`
	Kind       string    `json:"kind"`
	TotalSlots int       `json:"totalSlots"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

func FromReservation(r *booking.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		ShopID:     r.ShopID(),
		CustomerID: r.CustomerID(),
		Slot:       r.TimeSlot().ToTstzrange(),
		Kind:       string(r.Kind()),
		TotalSlots: r.TotalSlots(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		ShopID:     rm.ShopID,
		ShopName:   rm.ShopName,
		CustomerID: rm.CustomerID,
		Slot:       rm.Slot,
		Kind:       rm.Kind,
		TotalSlots: rm.TotalSlots,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromReservationListItems(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	page := &ReservationPageResponse{
		Items: make([]*ReservationListResponse, 0, len(items)),
	}
	for _, rm := range items {
		page.Items = append(page.Items, &ReservationListResponse{
			ID:         rm.ID,
			ShopID:     rm.ShopID,
			Slot:       rm.Slot,
			Kind:       rm.Kind,
			TotalSlots: rm.TotalSlots,
			CreatedAt:  rm.CreatedAt,
		})
	}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}
