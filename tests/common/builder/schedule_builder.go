//go:build unit || e2e

package builder

import (
	"time"

	"booking-core/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleConfigBuilder struct {
	ShopID               uuid.UUID
	OpenTime             string
	CloseTime            string
	RestStart            *string
	RestEnd              *string
	OpenWeekdays         []time.Weekday
	HolidayPatterns      []string
	SlotIntervalMin      int
	BufferPreparationMin int
	MinLeadTimeHours     int
	AutoFillLogic        bool
	ScheduleSyncID       *uuid.UUID
}

func NewScheduleConfigBuilder() *ScheduleConfigBuilder {
	return &ScheduleConfigBuilder{
		ShopID:    uuid.New(),
		OpenTime:  "09:00",
		CloseTime: "18:00",
		OpenWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		SlotIntervalMin: 30,
	}
}

func (b *ScheduleConfigBuilder) With(mutate func(*ScheduleConfigBuilder)) *ScheduleConfigBuilder {
	mutate(b)
	return b
}

func (b *ScheduleConfigBuilder) BuildDomain() schedule.Config {
	var rest *schedule.RestWindow
	if b.RestStart != nil && b.RestEnd != nil {
		rest = &schedule.RestWindow{
			Start: schedule.MustClockTime(*b.RestStart),
			End:   schedule.MustClockTime(*b.RestEnd),
		}
	}

	hours := schedule.WeeklyHours{}
	for _, day := range b.OpenWeekdays {
		hours[day] = schedule.DayHours{
			Open:  schedule.MustClockTime(b.OpenTime),
			Close: schedule.MustClockTime(b.CloseTime),
			Rest:  rest,
		}
	}

	holidays, err := schedule.NewHolidaySet(b.HolidayPatterns...)
	if err != nil {
		panic(err)
	}

	return schedule.Config{
		ShopID:               b.ShopID,
		WeeklyHours:          hours,
		RegularHolidays:      holidays,
		SlotIntervalMin:      b.SlotIntervalMin,
		BufferPreparationMin: b.BufferPreparationMin,
		MinLeadTimeHours:     b.MinLeadTimeHours,
		AutoFillLogic:        b.AutoFillLogic,
		ScheduleSyncID:       b.ScheduleSyncID,
	}
}
