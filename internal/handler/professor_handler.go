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

type professorService interface {
	List(ctx context.Context, ownerID string) ([]models.Professor, error)
	Get(ctx context.Context, ownerID, id string) (*models.Professor, error)
	Create(ctx context.Context, ownerID string, req service.CreateProfessorRequest) (*models.Professor, error)
	Update(ctx context.Context, ownerID, id string, req service.UpdateProfessorRequest) (*models.Professor, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ProfessorHandler wires the professor directory to HTTP endpoints.
type ProfessorHandler struct {
	service professorService
}

// NewProfessorHandler constructs the handler.
func NewProfessorHandler(service professorService) *ProfessorHandler {
	return &ProfessorHandler{service: service}
}

// List godoc
// @Summary List the student's professors
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /professors [get]
func (h *ProfessorHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	professors, err := h.service.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professors)
}

// Get godoc
// @Summary Get one professor
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Success 200 {object} response.Envelope
// @Router /professors/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	professor, err := h.service.Get(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}

// Create godoc
// @Summary Create a professor
// @Tags Professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Router /professors [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	professor, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// Update godoc
// @Summary Partially update a professor
// @Tags Professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Param payload body service.UpdateProfessorRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /professors/{id} [patch]
func (h *ProfessorHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	professor, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}

// Delete godoc
// @Summary Delete a professor
// @Tags Professors
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Success 204
// @Router /professors/{id} [delete]
func (h *ProfessorHandler) Delete(c *gin.Context) {
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
