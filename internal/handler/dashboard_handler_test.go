package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/middleware"
	"github.com/notas-claras/agenda-api/internal/models"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type fakeDashboardSrv struct {
	summary *dto.DashboardSummary
	hit     bool
	err     error
}

func (f *fakeDashboardSrv) Summary(context.Context, string) (*dto.DashboardSummary, bool, error) {
	return f.summary, f.hit, f.err
}

func authedContext(t *testing.T, rec *httptest.ResponseRecorder, method, target string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "owner", Email: "ana@example.com"})
	return c
}

func TestDashboardHandlerRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	handler.Summary(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandlerSummarySuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{
		summary: &dto.DashboardSummary{PendingHomework: 3, UpcomingExams: 1, UpcomingEvents: []dto.UpcomingEvent{}},
		hit:     true,
	})

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/dashboard")

	handler.Summary(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, float64(3), envelope.Data["pendingHomework"])
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}
