package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
	"github.com/notas-claras/agenda-api/internal/service"
)

type fakeHomeworkSource struct {
	items []models.Homework
	err   error
}

func (f *fakeHomeworkSource) ListByOwner(context.Context, string) ([]models.Homework, error) {
	return f.items, f.err
}

type fakeExamSource struct {
	items []models.Exam
	err   error
}

func (f *fakeExamSource) ListByOwner(context.Context, string) ([]models.Exam, error) {
	return f.items, f.err
}

func TestSearchHandlerFiltersByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	homework := &fakeHomeworkSource{items: []models.Homework{
		{ID: "h1", Title: "Ensayo", Subject: "Historia", DueDate: time.Now(), Completed: true},
		{ID: "h2", Title: "Guía", Subject: "Cálculo", DueDate: time.Now()},
	}}
	handler := NewSearchHandler(homework, &fakeExamSource{}, service.NewSearchService(0.3, zap.NewNop()))

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/search?status=pending")

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Items []map[string]interface{} `json:"items"`
			Total int                      `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Total)
}

func TestSearchHandlerRejectsHalfOpenRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeHomeworkSource{}, &fakeExamSource{}, service.NewSearchService(0.3, zap.NewNop()))

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/search?from=2024-03-01")

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerInclusiveRangeEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	homework := &fakeHomeworkSource{items: []models.Homework{
		{ID: "h1", Title: "Ensayo", Subject: "Historia", DueDate: time.Date(2024, 3, 7, 18, 30, 0, 0, time.UTC)},
	}}
	handler := NewSearchHandler(homework, &fakeExamSource{}, service.NewSearchService(0.3, zap.NewNop()))

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/search?from=2024-03-01&to=2024-03-07")

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Total)
}
