package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/notas-claras/agenda-api/internal/service"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/response"
)

type exportService interface {
	Agenda(ctx context.Context, ownerID string, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler serves downloadable agenda documents.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Agenda godoc
// @Summary Download the agenda as CSV or PDF
// @Tags Export
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /export/agenda [get]
func (h *ExportHandler) Agenda(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	format := service.ExportFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	if format == "" {
		format = service.ExportFormatCSV
	}
	result, err := h.service.Agenda(c.Request.Context(), claims.UserID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
