package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
	"github.com/notas-claras/agenda-api/internal/service"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/response"
)

type eventSource interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Homework, error)
}

type examSource interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Exam, error)
}

type searchEngine interface {
	Search(items []models.Event, filters service.SearchFilters) []models.Event
	Sort(items []models.Event, sortBy, order string) []models.Event
	DeriveOptions(items []models.Event, subjects []models.Subject, professors []models.Professor) dto.FilterOptions
}

// SearchHandler loads the student's events and runs the search pipeline.
type SearchHandler struct {
	homework eventSource
	exams    examSource
	engine   searchEngine
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(homework eventSource, exams examSource, engine searchEngine) *SearchHandler {
	return &SearchHandler{homework: homework, exams: exams, engine: engine}
}

// Search godoc
// @Summary Search and filter homework and exams
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param q query string false "Fuzzy text query"
// @Param subject query string false "Exact subject name"
// @Param status query string false "all | pending | completed"
// @Param type query string false "all | homework | exam"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param sortBy query string false "date | title | subject | type"
// @Param order query string false "asc | desc"
// @Success 200 {object} response.Envelope
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	filters := service.SearchFilters{
		Query:   strings.TrimSpace(c.Query("q")),
		Subject: strings.TrimSpace(c.Query("subject")),
		Status:  strings.TrimSpace(c.Query("status")),
		Type:    strings.TrimSpace(c.Query("type")),
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if (from == "") != (to == "") {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "from and to must be provided together"))
		return
	}
	if from != "" {
		start, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from date, expected YYYY-MM-DD"))
			return
		}
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid to date, expected YYYY-MM-DD"))
			return
		}
		// the range is inclusive on both ends, push the end to the last instant of its day
		end = end.Add(24*time.Hour - time.Nanosecond)
		filters.DateRange = &service.DateRange{Start: start, End: end}
	}

	homework, err := h.homework.ListByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework"))
		return
	}
	exams, err := h.exams.ListByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams"))
		return
	}

	events := models.ProjectEvents(homework, exams)
	results := h.engine.Search(events, filters)

	if sortBy := strings.TrimSpace(c.Query("sortBy")); sortBy != "" {
		results = h.engine.Sort(results, sortBy, strings.TrimSpace(c.Query("order")))
	}

	response.JSON(c, http.StatusOK, dto.SearchResponse{
		Items:   results,
		Total:   len(results),
		Options: h.engine.DeriveOptions(results, nil, nil),
	})
}
