package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notas-claras/agenda-api/internal/models"
)

type fakeSubjectLister struct {
	subjects []models.Subject
	err      error
}

func (f *fakeSubjectLister) ListByOwner(context.Context, string) ([]models.Subject, error) {
	return f.subjects, f.err
}

func TestBuildMonthGridShapeMarch2024(t *testing.T) {
	// March 2024 has 31 days and the 1st falls on a Friday.
	grid := BuildMonthGrid(nil, nil, 2024, time.March)

	require.Len(t, grid.Cells, 5+31)
	for i := 0; i < 5; i++ {
		assert.Zero(t, grid.Cells[i].Day)
		assert.Empty(t, grid.Cells[i].Date)
	}
	assert.Equal(t, 1, grid.Cells[5].Day)
	assert.Equal(t, "2024-03-01", grid.Cells[5].Date)
	assert.Equal(t, 31, grid.Cells[len(grid.Cells)-1].Day)
}

func TestBuildMonthGridBucketsEventsPerDay(t *testing.T) {
	homework := []models.Homework{
		{ID: "hw-1", Title: "Tarea", Subject: "Matemáticas", DueDate: time.Date(2024, 3, 5, 18, 0, 0, 0, time.Local)},
	}
	exams := []models.Exam{
		{ID: "ex-1", Title: "Parcial", Subject: "Física", ExamDate: time.Date(2024, 3, 5, 8, 0, 0, 0, time.Local)},
		{ID: "ex-2", Title: "Final", Subject: "Física", ExamDate: time.Date(2024, 3, 20, 8, 0, 0, 0, time.Local)},
	}
	events := models.ProjectEvents(homework, exams)

	grid := BuildMonthGrid(events, nil, 2024, time.March)

	day5 := grid.Cells[5+4] // 5 blanks, then days 1-4
	require.Equal(t, 5, day5.Day)
	require.Len(t, day5.Events, 2)
	assert.Equal(t, "hw-1", day5.Events[0].ID)
	assert.Equal(t, "ex-1", day5.Events[1].ID)

	day20 := grid.Cells[5+19]
	require.Len(t, day20.Events, 1)
	assert.Equal(t, "ex-2", day20.Events[0].ID)
}

func TestEventsForDateMatchesCalendarDayOnly(t *testing.T) {
	events := models.ProjectEvents([]models.Homework{
		{ID: "hw-1", DueDate: time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)},
		{ID: "hw-2", DueDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)},
	}, nil)

	matches := EventsForDate(events, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local))
	require.Len(t, matches, 1)
	assert.Equal(t, "hw-1", matches[0].ID())
}

func TestSubjectColorDeterminism(t *testing.T) {
	first := SubjectColor(nil, "Matemáticas")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SubjectColor(nil, "Matemáticas"))
	}
	assert.Contains(t, models.PresetColors(), first)
	assert.NotEqual(t, first, SubjectColor(nil, "Física"))
}

func TestSubjectColorPrefersConfiguredSubject(t *testing.T) {
	subjects := []models.Subject{{Name: "Matemáticas", Color: "#123456"}}

	assert.Equal(t, "#123456", SubjectColor(subjects, "Matemáticas"))
	// Unknown names fall back to the stable palette, never an error.
	assert.Contains(t, models.PresetColors(), SubjectColor(subjects, "Química"))
}

func TestCalendarServiceMonthAndDay(t *testing.T) {
	homework := []models.Homework{
		{ID: "hw-1", Title: "Tarea", Subject: "Historia", DueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)},
	}
	svc := NewCalendarService(
		&fakeHomeworkLister{homework: homework},
		&fakeExamLister{},
		&fakeSubjectLister{},
		nil,
	)

	grid, err := svc.Month(context.Background(), "user-1", 2024, time.March)
	require.NoError(t, err)
	assert.Len(t, grid.Cells, 36)

	entries, err := svc.Day(context.Background(), "user-1", time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hw-1", entries[0].ID)

	empty, err := svc.Day(context.Background(), "user-1", time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
