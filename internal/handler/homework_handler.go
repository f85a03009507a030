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

type homeworkService interface {
	List(ctx context.Context, ownerID string) ([]models.Homework, error)
	Get(ctx context.Context, ownerID, id string) (*models.Homework, error)
	Create(ctx context.Context, ownerID string, req service.CreateHomeworkRequest) (*models.Homework, error)
	Update(ctx context.Context, ownerID, id string, req service.UpdateHomeworkRequest) (*models.Homework, error)
	ToggleComplete(ctx context.Context, ownerID, id string) (*models.Homework, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// HomeworkHandler wires homework management to HTTP endpoints.
type HomeworkHandler struct {
	service homeworkService
}

// NewHomeworkHandler constructs the handler.
func NewHomeworkHandler(service homeworkService) *HomeworkHandler {
	return &HomeworkHandler{service: service}
}

// List godoc
// @Summary List the student's homework
// @Tags Homework
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /homework [get]
func (h *HomeworkHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	homework, err := h.service.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, homework)
}

// Get godoc
// @Summary Get one homework record
// @Tags Homework
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework ID"
// @Success 200 {object} response.Envelope
// @Router /homework/{id} [get]
func (h *HomeworkHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	homework, err := h.service.Get(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, homework)
}

// Create godoc
// @Summary Create a homework record
// @Tags Homework
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateHomeworkRequest true "Homework payload"
// @Success 201 {object} response.Envelope
// @Router /homework [post]
func (h *HomeworkHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	homework, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, homework)
}

// Update godoc
// @Summary Partially update a homework record
// @Tags Homework
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework ID"
// @Param payload body service.UpdateHomeworkRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /homework/{id} [patch]
func (h *HomeworkHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.UpdateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	homework, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, homework)
}

// Toggle godoc
// @Summary Toggle the completed flag
// @Tags Homework
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework ID"
// @Success 200 {object} response.Envelope
// @Router /homework/{id}/toggle [patch]
func (h *HomeworkHandler) Toggle(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	homework, err := h.service.ToggleComplete(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, homework)
}

// Delete godoc
// @Summary Delete a homework record
// @Tags Homework
// @Security BearerAuth
// @Param id path string true "Homework ID"
// @Success 204
// @Router /homework/{id} [delete]
func (h *HomeworkHandler) Delete(c *gin.Context) {
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
