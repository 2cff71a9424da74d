//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-core/internal/infra"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"
	readstoremock "booking-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *readstoremock.MockReservationViewReadStore
	queries  queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = readstoremock.NewMockReservationViewReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockRepo)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

// ================================================================================
// GetByID
// ================================================================================

func (s *ReservationQueriesTestSuite) TestGetByID() {
	s.Run("本人は自分の予約を参照できる", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{UserID: *view.CustomerID, Role: shared.RoleCustomer}

		s.mockRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), actor, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("他人の予約は ErrReservationForbidden", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{UserID: uuid.New(), Role: shared.RoleCustomer}

		s.mockRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), actor, view.ID)
		s.ErrorIs(err, queries.ErrReservationForbidden)
	})

	s.Run("店舗スコープの管理者は顧客予約を参照できる", func() {
		view := builder.NewReservationBuilder().BuildView()
		shopID := view.ShopID
		actor := shared.Actor{UserID: uuid.New(), Role: shared.RoleAdmin, ShopID: &shopID}

		s.mockRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), actor, view.ID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("別店舗の管理者は ErrReservationForbidden", func() {
		view := builder.NewReservationBuilder().BuildView()
		otherShop := uuid.New()
		actor := shared.Actor{UserID: uuid.New(), Role: shared.RoleAdmin, ShopID: &otherShop}

		s.mockRepo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), actor, view.ID)
		s.ErrorIs(err, queries.ErrReservationForbidden)
	})

	s.Run("存在しない予約は ErrReservationNotFound", func() {
		id := uuid.New()
		actor := shared.Actor{UserID: uuid.New(), Role: shared.RoleCustomer}

		s.mockRepo.EXPECT().FindViewByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(context.Background(), actor, id)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})
}

// ================================================================================
// ListByCustomer
// ================================================================================

func (s *ReservationQueriesTestSuite) TestListByCustomer() {
	customerID := uuid.New()

	makeItems := func(n int) []*queries.ReservationListItem {
		items := make([]*queries.ReservationListItem, n)
		base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		for i := range items {
			items[i] = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
			}).BuildListItem()
		}
		return items
	}

	s.Run("結果が limit 以下なら次ページカーソルは無い", func() {
		items := makeItems(3)
		s.mockRepo.EXPECT().ListViewsByCustomerAfter(gomock.Any(), customerID, time.Time{}, uuid.Nil, int32(21)).
			Return(items, nil).Times(1)

		got, next, err := s.queries.ListByCustomer(context.Background(), customerID, nil, 20)
		s.Require().NoError(err)
		s.Len(got, 3)
		s.Nil(next)
	})

	s.Run("limit+1 件返ると次ページカーソルが発行される", func() {
		items := makeItems(3)
		s.mockRepo.EXPECT().ListViewsByCustomerAfter(gomock.Any(), customerID, time.Time{}, uuid.Nil, int32(3)).
			Return(items, nil).Times(1)

		got, next, err := s.queries.ListByCustomer(context.Background(), customerID, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)

		// The cursor round-trips to the last returned row's position.
		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(got[1].ID, id)
		s.True(at.Equal(got[1].CreatedAt))
	})

	s.Run("カーソル指定でキーセット位置が渡される", func() {
		last := makeItems(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}

		s.mockRepo.EXPECT().ListViewsByCustomerAfter(gomock.Any(), customerID, gomock.Any(), last.ID, int32(21)).
			Return(nil, nil).Times(1)

		got, next, err := s.queries.ListByCustomer(context.Background(), customerID, cursor, 20)
		s.Require().NoError(err)
		s.Empty(got)
		s.Nil(next)
	})

	s.Run("壊れたカーソルは ErrInvalidCursor", func() {
		cursor := &queries.Cursor{After: "not-a-cursor"}
		_, _, err := s.queries.ListByCustomer(context.Background(), customerID, cursor, 20)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("limit 0 はデフォルトの 20 に丸められる", func() {
		s.mockRepo.EXPECT().ListViewsByCustomerAfter(gomock.Any(), customerID, time.Time{}, uuid.Nil, int32(21)).
			Return(nil, nil).Times(1)

		_, _, err := s.queries.ListByCustomer(context.Background(), customerID, nil, 0)
		s.NoError(err)
	})
}

// ================================================================================
// ListByShopAndDay
// ================================================================================

func (s *ReservationQueriesTestSuite) TestListByShopAndDay() {
	shopID := uuid.New()
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	s.Run("その日の予約が返る", func() {
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ShopID = shopID }).BuildListItem(),
		}
		s.mockRepo.EXPECT().ListViewsByShopAndRange(gomock.Any(), shopID, day, day.AddDate(0, 0, 1)).
			Return(items, nil).Times(1)

		got, err := s.queries.ListByShopAndDay(context.Background(), shopID, day)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("読み取り失敗は ErrScheduleReadFailed", func() {
		s.mockRepo.EXPECT().ListViewsByShopAndRange(gomock.Any(), shopID, day, day.AddDate(0, 0, 1)).
			Return(nil, errors.New("connection lost")).Times(1)

		_, err := s.queries.ListByShopAndDay(context.Background(), shopID, day)
		s.ErrorIs(err, queries.ErrScheduleReadFailed)
	})
}
