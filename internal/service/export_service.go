package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
	"github.com/notas-claras/agenda-api/pkg/export"
)

// ExportFormat selects the agenda export output.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered document and its HTTP metadata.
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportService renders the student's agenda as a downloadable document.
type ExportService struct {
	homework homeworkLister
	exams    examLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(homework homeworkLister, exams examLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		homework: homework,
		exams:    exams,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

var agendaHeaders = []string{"Tipo", "Título", "Materia", "Fecha", "Estado", "Descripción"}

// Agenda renders the owner's full agenda, homework and exams together,
// ordered by date.
func (s *ExportService) Agenda(ctx context.Context, ownerID string, format ExportFormat) (*ExportResult, error) {
	homework, err := s.homework.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework")
	}
	exams, err := s.exams.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}

	events := models.ProjectEvents(homework, exams)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EffectiveDate().Before(events[j].EffectiveDate())
	})

	dataset := export.Dataset{Headers: agendaHeaders, Rows: make([]map[string]string, 0, len(events))}
	for _, event := range events {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Tipo":        kindLabel(event.Kind),
			"Título":      event.Title(),
			"Materia":     event.Subject(),
			"Fecha":       event.EffectiveDate().Format("2006-01-02"),
			"Estado":      statusLabel(event.Completed()),
			"Descripción": event.Description(),
		})
	}

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{FileName: "agenda.csv", ContentType: "text/csv", Content: content}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Agenda")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{FileName: "agenda.pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func kindLabel(kind models.EventKind) string {
	if kind == models.EventKindExam {
		return "Examen"
	}
	return "Tarea"
}

func statusLabel(completed bool) string {
	if completed {
		return "Completada"
	}
	return "Pendiente"
}
