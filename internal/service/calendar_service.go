package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

type subjectLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Subject, error)
}

// CalendarService buckets the owner's events into a month grid.
type CalendarService struct {
	homework homeworkLister
	exams    examLister
	subjects subjectLister
	logger   *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(homework homeworkLister, exams examLister, subjects subjectLister, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{homework: homework, exams: exams, subjects: subjects, logger: logger}
}

// Month returns the grid for the given month with events bucketed per day.
func (s *CalendarService) Month(ctx context.Context, ownerID string, year int, month time.Month) (*dto.CalendarMonth, error) {
	events, subjects, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	grid := BuildMonthGrid(events, subjects, year, month)
	return &grid, nil
}

// Day returns the events falling on a single calendar day.
func (s *CalendarService) Day(ctx context.Context, ownerID string, date time.Time) ([]dto.CalendarEventEntry, error) {
	events, subjects, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.CalendarEventEntry, 0)
	for _, event := range EventsForDate(events, date) {
		entries = append(entries, eventEntry(event, subjects))
	}
	return entries, nil
}

func (s *CalendarService) load(ctx context.Context, ownerID string) ([]models.Event, []models.Subject, error) {
	homework, err := s.homework.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework")
	}
	exams, err := s.exams.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	var subjects []models.Subject
	if s.subjects != nil {
		subjects, err = s.subjects.ListByOwner(ctx, ownerID)
		if err != nil {
			// Subjects only contribute colors; fall back to the hash palette.
			s.logger.Warn("calendar subject load failed", zap.Error(err))
			subjects = nil
		}
	}
	return models.ProjectEvents(homework, exams), subjects, nil
}

// BuildMonthGrid lays out a Sunday-first month grid: leading blank cells for
// the weekdays before the 1st, then one cell per day carrying that day's
// events.
func BuildMonthGrid(events []models.Event, subjects []models.Subject, year int, month time.Month) dto.CalendarMonth {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	leadingBlanks := int(firstDay.Weekday())

	cells := make([]dto.CalendarCell, 0, leadingBlanks+daysInMonth)
	for i := 0; i < leadingBlanks; i++ {
		cells = append(cells, dto.CalendarCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cell := dto.CalendarCell{Day: day, Date: date.Format("2006-01-02")}
		for _, event := range EventsForDate(events, date) {
			cell.Events = append(cell.Events, eventEntry(event, subjects))
		}
		cells = append(cells, cell)
	}

	return dto.CalendarMonth{Year: year, Month: int(month), Cells: cells}
}

// EventsForDate filters events to those whose effective date falls on the
// given local calendar day.
func EventsForDate(events []models.Event, date time.Time) []models.Event {
	matches := make([]models.Event, 0)
	for _, event := range events {
		if sameDay(event.EffectiveDate(), date) {
			matches = append(matches, event)
		}
	}
	return matches
}

// SubjectColor resolves the display color for a subject name. An exact match
// against the configured subjects wins; otherwise a stable color is derived
// from the name so the same subject always renders the same.
func SubjectColor(subjects []models.Subject, name string) string {
	for _, subject := range subjects {
		if subject.Name == name && subject.Color != "" {
			return subject.Color
		}
	}
	return hashColor(name)
}

// hashColor maps a subject name onto the preset palette using the same
// char-code/shift mix the UI always used, so colors survive restarts.
func hashColor(name string) string {
	colors := models.PresetColors()
	var hash int32
	for _, r := range name {
		hash = int32(r) + ((hash << 5) - hash)
	}
	if hash < 0 {
		hash = -hash
	}
	return colors[int(hash)%len(colors)]
}

func eventEntry(event models.Event, subjects []models.Subject) dto.CalendarEventEntry {
	return dto.CalendarEventEntry{
		ID:        event.ID(),
		Kind:      string(event.Kind),
		Title:     event.Title(),
		Subject:   event.Subject(),
		Color:     SubjectColor(subjects, event.Subject()),
		Completed: event.Completed(),
	}
}
