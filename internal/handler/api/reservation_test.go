//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/handler/api"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"
	"booking-core/tests/common/httptest"
	"booking-core/tests/common/testutil"
	commandsmock "booking-core/tests/mock/commands"
	queriesmock "booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	customerID   uuid.UUID
	adminShopID  uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, time.UTC)
	s.customerID = uuid.New()
	s.adminShopID = uuid.New()

	// Mock authentication middleware for testing
	customerAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", shared.Actor{UserID: s.customerID, Role: shared.RoleCustomer})
		c.Next()
	}
	adminAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		shopID := s.adminShopID
		c.Set("actor", shared.Actor{UserID: uuid.New(), Role: shared.RoleAdmin, ShopID: &shopID})
		c.Next()
	}

	s.router.POST("/reservations", customerAuth, s.handler.CreateReservation)
	s.router.GET("/reservations", customerAuth, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", customerAuth, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", customerAuth, s.handler.CancelReservation)
	s.router.POST("/admin/shops/:id/blocks", adminAuth, s.handler.CreateBlock)
	s.router.GET("/admin/shops/:id/reservations", adminAuth, s.handler.GetShopReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	rb := builder.NewReservationBuilder()
	reqBody := map[string]any{
		"shop_id":        rb.ShopID.String(),
		"start_time":     rb.Start.Format(time.RFC3339),
		"duration_slots": 2,
	}
	returnEntity := rb.BuildDomain()

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnEntity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnEntity.ID(), response.ID)
		s.Equal(string(booking.KindNormal), response.Kind)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + returnEntity.ID().String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: shop_id (required)", mutate: testutil.Field("shop_id", nil)},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: duration_slots (required)", mutate: testutil.Field("duration_slots", nil)},
			{name: "duration_slots below minimum (0)", mutate: testutil.Field("duration_slots", 0)},
			{name: "malformed shop_id", mutate: testutil.Field("shop_id", "not-a-uuid")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow at ten")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shop not found",
				commandsError:  commands.ErrShopNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Shop not found",
			},
			{
				name:           "slot already taken",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot already taken",
			},
			{
				name:           "slot not bookable",
				commandsError:  commands.ErrSlotNotBookable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot not bookable",
			},
			{
				name:           "start time off the slot grid",
				commandsError:  commands.ErrSlotNotAligned,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not aligned",
			},
			{
				name:           "invalid time slot",
				commandsError:  commands.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "domain validation failure",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.Slot, response.Slot)
		s.Equal(returnView.ShopName, response.ShopName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				queriesError:   queries.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "reservation owned by someone else",
				queriesError:   queries.ErrReservationForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), reservationID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	baseURL := "/reservations"

	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
		builder.NewReservationBuilder().BuildListItem(),
	}

	s.Run("success: returns reservation page", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.customerID, (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination params forwarded", func() {
		url := baseURL + "?limit=10&after=cursor123"
		expectedCursor := &queries.Cursor{After: "cursor123"}
		nextCursor := &queries.Cursor{After: "cursor456"}

		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.customerID, expectedCursor, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.NotNil(response.NextCursor)
		s.Equal("cursor456", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 Bad Request for undecodable cursor", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.customerID, &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), gomock.Any(), reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "reservation owned by someone else",
				commandsError:  commands.ErrReservationForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), gomock.Any(), reservationID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateBlock
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateBlock() {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	blockEntity := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ShopID = s.adminShopID
		b.CustomerID = nil
		b.Kind = booking.KindBlocked
	}).BuildDomain()

	s.Run("success: returns 201 Created for an all-day block", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/blocks"
		reqBody := map[string]any{
			"start_time": start.Format(time.RFC3339),
			"all_day":    true,
		}
		s.mockCommands.EXPECT().CreateBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(blockEntity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(string(booking.KindBlocked), response.Kind)
		s.Nil(response.CustomerID)
	})

	s.Run("success: explicit range block", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/blocks"
		reqBody := map[string]any{
			"start_time": start.Add(10 * time.Hour).Format(time.RFC3339),
			"end_time":   start.Add(12 * time.Hour).Format(time.RFC3339),
		}
		s.mockCommands.EXPECT().CreateBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(blockEntity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request when end_time missing and not all_day", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/blocks"
		reqBody := map[string]any{
			"start_time": start.Format(time.RFC3339),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid shop UUID", func() {
		reqBody := map[string]any{
			"start_time": start.Format(time.RFC3339),
			"all_day":    true,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/shops/invalid-uuid/blocks", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shop id")
	})

	s.Run("error: 403 Forbidden when token is scoped to another shop", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/blocks"
		reqBody := map[string]any{
			"start_time": start.Format(time.RFC3339),
			"all_day":    true,
		}
		s.mockCommands.EXPECT().CreateBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestGetShopReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetShopReservations() {
	s.Run("success: returns the day's reservations", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/reservations?date=2026-09-07"
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ShopID = s.adminShopID }).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByShopAndDay(gomock.Any(), s.adminShopID, gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.adminShopID, response[0].ShopID)
	})

	s.Run("error: 403 Forbidden when token is scoped to another shop", func() {
		otherShop := uuid.New()
		url := "/admin/shops/" + otherShop.String() + "/reservations?date=2026-09-07"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		url := "/admin/shops/" + s.adminShopID.String() + "/reservations?date=monday"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}
