package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/middleware"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context, ownerID string) (*dto.DashboardSummary, bool, error)
}

// DashboardHandler wires the dashboard summary to HTTP.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary godoc
// @Summary Dashboard counters and the next five events
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	summary, cacheHit, err := h.service.Summary(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, middleware.ExtractMeta(c))
}
