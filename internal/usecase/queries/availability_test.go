//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/queries"
	"booking-core/tests/common/builder"
	readstoremock "booking-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 2026-09-07 is the first Monday of September 2026.
var (
	testDay = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockShops        *readstoremock.MockShopScheduleReadStore
	mockReservations *readstoremock.MockReservationSnapshotReadStore
	queries          queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShops = readstoremock.NewMockShopScheduleReadStore(s.mockCtrl)
	s.mockReservations = readstoremock.NewMockReservationSnapshotReadStore(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockShops, s.mockReservations, clock.NewMockClock(testNow))
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) reservationAt(shopID uuid.UUID, startHour, endHour int) *booking.Reservation {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ShopID = shopID
		b.Start = testDay.Add(time.Duration(startHour) * time.Hour)
		b.End = testDay.Add(time.Duration(endHour) * time.Hour)
	}).BuildDomain()
}

func slotStatus(slots []queries.SlotView, at string) (queries.SlotView, bool) {
	for _, slot := range slots {
		if slot.Time == at {
			return slot, true
		}
	}
	return queries.SlotView{}, false
}

// ================================================================================
// Day
// ================================================================================

func (s *AvailabilityQueriesTestSuite) TestDay() {
	s.Run("空き枠と予約済み枠が分類される", func() {
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()
		existing := s.reservationAt(cfg.ShopID, 10, 11)

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, testDay, testDay.AddDate(0, 0, 1)).
			Return([]*booking.Reservation{existing}, nil).Times(1)

		sheet, err := s.queries.Day(context.Background(), cfg.ShopID, testDay, 1)
		s.Require().NoError(err)
		s.Equal("2026-09-07", sheet.Date)
		s.Len(sheet.Slots, 18) // 09:00..17:30 at 30-minute steps

		first, ok := slotStatus(sheet.Slots, "09:00")
		s.Require().True(ok)
		s.Equal("available", first.Status)

		booked, ok := slotStatus(sheet.Slots, "10:00")
		s.Require().True(ok)
		s.Equal("booked", booked.Status)
		s.Require().NotNil(booked.ReservationID)
		s.Equal(existing.ID(), *booked.ReservationID)

		booked2, ok := slotStatus(sheet.Slots, "10:30")
		s.Require().True(ok)
		s.Equal("booked", booked2.Status)
	})

	s.Run("定休日はすべての枠が closed_holiday になる", func() {
		cfg := builder.NewScheduleConfigBuilder().With(func(b *builder.ScheduleConfigBuilder) {
			b.HolidayPatterns = []string{"1-mon"}
		}).BuildDomain()

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, testDay, testDay.AddDate(0, 0, 1)).
			Return(nil, nil).Times(1)

		sheet, err := s.queries.Day(context.Background(), cfg.ShopID, testDay, 1)
		s.Require().NoError(err)
		for _, slot := range sheet.Slots {
			s.Equal("closed_holiday", slot.Status)
		}
	})

	s.Run("閉店日はグリッドが空になる", func() {
		sunday := testDay.AddDate(0, 0, -1)
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, sunday, sunday.AddDate(0, 0, 1)).
			Return(nil, nil).Times(1)

		sheet, err := s.queries.Day(context.Background(), cfg.ShopID, sunday, 1)
		s.Require().NoError(err)
		s.Empty(sheet.Slots)
	})

	s.Run("存在しない店舗は ErrShopNotFound", func() {
		shopID := uuid.New()
		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), shopID).
			Return(nil, infra.WrapRepoErr("shop not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.queries.Day(context.Background(), shopID, testDay, 1)
		s.ErrorIs(err, queries.ErrShopNotFound)
	})

	s.Run("無効な希望コマ数は ErrInvalidScheduleQuery", func() {
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()
		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		_, err := s.queries.Day(context.Background(), cfg.ShopID, testDay, 0)
		s.ErrorIs(err, queries.ErrInvalidScheduleQuery)
	})

	s.Run("読み取り失敗は ErrScheduleReadFailed", func() {
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()
		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection lost")).Times(1)

		_, err := s.queries.Day(context.Background(), cfg.ShopID, testDay, 1)
		s.ErrorIs(err, queries.ErrScheduleReadFailed)
	})
}

// ================================================================================
// Week
// ================================================================================

func (s *AvailabilityQueriesTestSuite) TestWeek() {
	s.Run("7日分が共有タイムラインで返る", func() {
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, testDay, testDay.AddDate(0, 0, 7)).
			Return(nil, nil).Times(1)

		sheet, err := s.queries.Week(context.Background(), cfg.ShopID, testDay, 1)
		s.Require().NoError(err)
		s.Equal("2026-09-07", sheet.Start)
		s.Len(sheet.Days, 7)
		s.Len(sheet.Times, 18)
		s.Equal("09:00", sheet.Times[0])
		s.Equal("17:30", sheet.Times[len(sheet.Times)-1])
		// Sunday is closed: its column classifies as closed_hours
		sunday := sheet.Days[6]
		s.Equal("2026-09-13", sunday.Date)
		for _, slot := range sunday.Slots {
			s.Equal("closed_hours", slot.Status)
		}
	})

	s.Run("連携店舗の予約は OtherShop として混ざる", func() {
		syncID := uuid.New()
		cfg := builder.NewScheduleConfigBuilder().With(func(b *builder.ScheduleConfigBuilder) {
			b.ScheduleSyncID = &syncID
		}).BuildDomain()
		sibling := s.reservationAt(uuid.New(), 14, 15)

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, testDay, testDay.AddDate(0, 0, 7)).
			Return(nil, nil).Times(1)
		s.mockReservations.EXPECT().SiblingReservationsByRange(gomock.Any(), syncID, cfg.ShopID, testDay, testDay.AddDate(0, 0, 7)).
			Return([]*booking.Reservation{sibling}, nil).Times(1)

		sheet, err := s.queries.Week(context.Background(), cfg.ShopID, testDay, 1)
		s.Require().NoError(err)

		monday := sheet.Days[0]
		slot, ok := slotStatus(monday.Slots, "14:00")
		s.Require().True(ok)
		s.Equal("booked", slot.Status)
		s.True(slot.OtherShop)
	})

	s.Run("連携IDが無ければ兄弟店舗は照会されない", func() {
		cfg := builder.NewScheduleConfigBuilder().BuildDomain()
		s.Require().Nil(cfg.ScheduleSyncID)

		s.mockShops.EXPECT().ConfigByShopID(gomock.Any(), cfg.ShopID).Return(&cfg, nil).Times(1)
		s.mockReservations.EXPECT().ReservationsByShopAndRange(gomock.Any(), cfg.ShopID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		_, err := s.queries.Week(context.Background(), cfg.ShopID, testDay, 1)
		s.NoError(err)
	})
}
