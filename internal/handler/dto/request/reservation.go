package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ShopID    uuid.UUID `json:"shop_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	// DurationSlots is the sum of the selected service and option slot
	// counts.
	DurationSlots int `json:"duration_slots" binding:"required,min=1"`
}

type CreateBlockRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"`
	AllDay    bool      `json:"all_day"`
}
