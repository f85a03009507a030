package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

func TestExportServiceAgendaCSV(t *testing.T) {
	homework := &fakeHomeworkLister{homework: []models.Homework{
		{ID: "h1", Title: "Ensayo", Subject: "Historia", DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Completed: true},
	}}
	exams := &fakeExamLister{exams: []models.Exam{
		{ID: "e1", Title: "Parcial", Subject: "Cálculo", ExamDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewExportService(homework, exams, zap.NewNop())

	result, err := svc.Agenda(context.Background(), "owner", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "agenda.csv", result.FileName)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Título")
	// rows come out date ascending, the exam precedes the homework
	assert.Contains(t, lines[1], "Examen")
	assert.Contains(t, lines[1], "Parcial")
	assert.Contains(t, lines[2], "Tarea")
	assert.Contains(t, lines[2], "Completada")
}

func TestExportServiceAgendaPDF(t *testing.T) {
	homework := &fakeHomeworkLister{homework: []models.Homework{
		{ID: "h1", Title: "Ensayo", Subject: "Historia", DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewExportService(homework, &fakeExamLister{}, zap.NewNop())

	result, err := svc.Agenda(context.Background(), "owner", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := NewExportService(&fakeHomeworkLister{}, &fakeExamLister{}, zap.NewNop())

	_, err := svc.Agenda(context.Background(), "owner", ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
