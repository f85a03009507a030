package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notas-claras/agenda-api/internal/models"
	"github.com/notas-claras/agenda-api/internal/service"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/response"
)

type examService interface {
	List(ctx context.Context, ownerID string) ([]models.Exam, error)
	Get(ctx context.Context, ownerID, id string) (*models.Exam, error)
	Create(ctx context.Context, ownerID string, req service.CreateExamRequest) (*models.Exam, error)
	Update(ctx context.Context, ownerID, id string, req service.UpdateExamRequest) (*models.Exam, error)
	ToggleComplete(ctx context.Context, ownerID, id string) (*models.Exam, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ExamHandler wires exam management to HTTP endpoints.
type ExamHandler struct {
	service examService
}

// NewExamHandler constructs the handler.
func NewExamHandler(service examService) *ExamHandler {
	return &ExamHandler{service: service}
}

// List godoc
// @Summary List the student's exams
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	exams, err := h.service.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams)
}

// Get godoc
// @Summary Get one exam record
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	exam, err := h.service.Get(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Create godoc
// @Summary Create an exam record
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	exam, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Update godoc
// @Summary Partially update an exam record
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Param payload body service.UpdateExamRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [patch]
func (h *ExamHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	exam, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Toggle godoc
// @Summary Toggle the completed flag
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id}/toggle [patch]
func (h *ExamHandler) Toggle(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	exam, err := h.service.ToggleComplete(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Delete godoc
// @Summary Delete an exam record
// @Tags Exams
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 204
// @Router /exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
