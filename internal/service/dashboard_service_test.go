package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
)

type fakeHomeworkLister struct {
	homework []models.Homework
	err      error
}

func (f *fakeHomeworkLister) ListByOwner(context.Context, string) ([]models.Homework, error) {
	return f.homework, f.err
}

type fakeExamLister struct {
	exams []models.Exam
	err   error
}

func (f *fakeExamLister) ListByOwner(context.Context, string) ([]models.Exam, error) {
	return f.exams, f.err
}

func newDashboardFixture(homework []models.Homework, exams []models.Exam, now time.Time) *DashboardService {
	svc := NewDashboardService(DashboardServiceParams{
		Homework: &fakeHomeworkLister{homework: homework},
		Exams:    &fakeExamLister{exams: exams},
		Logger:   zap.NewNop(),
	})
	svc.now = func() time.Time { return now }
	return svc
}

func TestDashboardSevenDayWindowBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	exams := []models.Exam{
		{ID: "ex-in", Title: "Parcial", ExamDate: time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)},
		{ID: "ex-out", Title: "Final", ExamDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)},
	}
	svc := newDashboardFixture(nil, exams, now)

	summary, cacheHit, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 1, summary.UpcomingExams)
	require.Len(t, summary.UpcomingEvents, 1)
	assert.Equal(t, "ex-in", summary.UpcomingEvents[0].ID)
}

func TestDashboardPendingHomeworkCount(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	homework := []models.Homework{
		{ID: "hw-1", DueDate: now.AddDate(0, 0, 1), Completed: false},
		{ID: "hw-2", DueDate: now.AddDate(0, 0, 30), Completed: false},
		{ID: "hw-3", DueDate: now, Completed: true},
	}
	svc := newDashboardFixture(homework, nil, now)

	summary, _, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	// Pending homework counts regardless of due date.
	assert.Equal(t, 2, summary.PendingHomework)
}

func TestDashboardCompletedTodayIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.Local)
	homework := []models.Homework{
		{ID: "hw-1", DueDate: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local), Completed: true},
		{ID: "hw-2", DueDate: time.Date(2024, 2, 29, 8, 0, 0, 0, time.Local), Completed: true},
	}
	exams := []models.Exam{
		{ID: "ex-1", ExamDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), Completed: true},
	}
	svc := newDashboardFixture(homework, exams, now)

	summary, _, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CompletedToday)
}

func TestDashboardUpcomingEventsSortedAndTruncated(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	var homework []models.Homework
	for day := 7; day >= 2; day-- {
		homework = append(homework, models.Homework{
			ID:      "hw-" + string(rune('0'+day)),
			DueDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.Local),
		})
	}
	svc := newDashboardFixture(homework, nil, now)

	summary, _, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary.UpcomingEvents, 5)
	assert.Equal(t, "2024-03-02", summary.UpcomingEvents[0].Date)
	assert.Equal(t, "2024-03-06", summary.UpcomingEvents[4].Date)
}

func TestDashboardExcludesCompletedFromUpcoming(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	homework := []models.Homework{
		{ID: "hw-1", DueDate: now.AddDate(0, 0, 2), Completed: true},
		{ID: "hw-2", DueDate: now.AddDate(0, 0, 3), Completed: false},
	}
	svc := newDashboardFixture(homework, nil, now)

	summary, _, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary.UpcomingEvents, 1)
	assert.Equal(t, "hw-2", summary.UpcomingEvents[0].ID)
}

func TestDashboardEmptyInputs(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	svc := newDashboardFixture(nil, nil, now)

	summary, _, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, summary.PendingHomework)
	assert.Zero(t, summary.UpcomingExams)
	assert.Zero(t, summary.CompletedToday)
	assert.Empty(t, summary.UpcomingEvents)
}
