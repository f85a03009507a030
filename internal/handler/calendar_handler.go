package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notas-claras/agenda-api/internal/dto"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/response"
)

type calendarService interface {
	Month(ctx context.Context, ownerID string, year int, month time.Month) (*dto.CalendarMonth, error)
	Day(ctx context.Context, ownerID string, date time.Time) ([]dto.CalendarEventEntry, error)
}

// CalendarHandler wires the month grid and day lookups to HTTP.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Month godoc
// @Summary Month grid with per-day event buckets
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Envelope
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid month, expected 1-12"))
		return
	}
	grid, err := h.service.Month(c.Request.Context(), claims.UserID, year, time.Month(month))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid)
}

// Day godoc
// @Summary Events on a single calendar day
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date is required"))
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD"))
		return
	}
	events, err := h.service.Day(c.Request.Context(), claims.UserID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}
