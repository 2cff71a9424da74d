package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultDurationSlots = 1

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	location            *time.Location
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, cfg config.BookingConfig) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		location:            cfg.Location(),
	}
}

// @Summary Day availability
// @Description Classified slot grid for one shop and one date
// @Tags availability
// @Produce json
// @Param id path string true "Shop ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param slots query int false "Requested duration in slots" default(1)
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shops/{id}/availability [get]
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	durationSlots, err := parseDurationSlots(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slots", nil)
		return
	}

	sheet, err := h.availabilityQueries.Day(c.Request.Context(), shopID, date, durationSlots)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySheet(sheet))
}

// @Summary Week availability
// @Description Admin week sheet: seven days on a shared time axis, sibling-shop reservations merged
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Param start query string true "Week start date (YYYY-MM-DD)"
// @Param slots query int false "Requested duration in slots" default(1)
// @Success 200 {object} resdto.WeekAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/shops/{id}/availability/week [get]
func (h *AvailabilityHandler) GetWeekAvailability(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("actor missing from context"), "Internal error", nil)
		return
	}
	if !actor.CanManageShop(shopID) {
		httperr.AbortWithError(c, http.StatusForbidden, errors.New("token not scoped to shop"), "Access denied", nil)
		return
	}

	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), h.location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start date", nil)
		return
	}

	durationSlots, err := parseDurationSlots(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slots", nil)
		return
	}

	sheet, err := h.availabilityQueries.Week(c.Request.Context(), shopID, start, durationSlots)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekSheet(sheet))
}

func (h *AvailabilityHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrShopNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found", nil)
	case errors.Is(err, queries.ErrInvalidScheduleQuery):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule query", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseDurationSlots(c *gin.Context) (int, error) {
	raw := c.Query("slots")
	if raw == "" {
		return defaultDurationSlots, nil
	}
	slots, err := strconv.Atoi(raw)
	if err != nil || slots <= 0 {
		return 0, errors.New("slots must be a positive integer")
	}
	return slots, nil
}
