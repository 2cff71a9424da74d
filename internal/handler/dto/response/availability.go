package response

import (
	"booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	OtherShop     bool       `json:"otherShop,omitempty"`
}

type DayAvailabilityResponse struct {
	ShopID uuid.UUID      `json:"shopId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

type WeekAvailabilityResponse struct {
	ShopID uuid.UUID                 `json:"shopId"`
	Start  string                    `json:"start"`
	Times  []string                  `json:"times"`
	Days   []DayAvailabilityResponse `json:"days"`
}

func FromDaySheet(sheet *queries.DaySheet) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		ShopID: sheet.ShopID,
		Date:   sheet.Date,
		Slots:  fromSlotViews(sheet.Slots),
	}
}

func FromWeekSheet(sheet *queries.WeekSheet) *WeekAvailabilityResponse {
	resp := &WeekAvailabilityResponse{
		ShopID: sheet.ShopID,
		Start:  sheet.Start,
		Times:  sheet.Times,
		Days:   make([]DayAvailabilityResponse, 0, len(sheet.Days)),
	}
	for i := range sheet.Days {
		resp.Days = append(resp.Days, *FromDaySheet(&sheet.Days[i]))
	}
	return resp
}

func fromSlotViews(views []queries.SlotView) []SlotResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{
			Time:          v.Time,
			Status:        v.Status,
			ReservationID: v.ReservationID,
			OtherShop:     v.OtherShop,
		}
	}
	return slots
}
