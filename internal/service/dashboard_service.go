package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
)

type homeworkLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Homework, error)
}

type examLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Exam, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL            time.Duration
	LookaheadDays       int
	UpcomingEventsLimit int
}

// DashboardService derives the home-screen counters and upcoming list from
// the owner's homework and exams.
type DashboardService struct {
	homework homeworkLister
	exams    examLister
	cache    *CacheService
	logger   *zap.Logger
	now      func() time.Time
	cfg      DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Homework homeworkLister
	Exams    examLister
	Cache    *CacheService
	Logger   *zap.Logger
	Config   DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = 7
	}
	if cfg.UpcomingEventsLimit <= 0 {
		cfg.UpcomingEventsLimit = 5
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		homework: params.Homework,
		exams:    params.Exams,
		cache:    params.Cache,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Summary returns the owner's dashboard and reports cache utilisation.
func (s *DashboardService) Summary(ctx context.Context, ownerID string) (*dto.DashboardSummary, bool, error) {
	now := s.now()
	cacheKey := fmt.Sprintf("dash:%s:%s", ownerID, now.Format("2006-01-02"))
	if s.cache != nil {
		var cached dto.DashboardSummary
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			return nil, false, err
		}
		if hit {
			return &cached, true, nil
		}
	}

	homework, err := s.homework.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}
	exams, err := s.exams.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	summary := s.Summarize(models.ProjectEvents(homework, exams), now)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, summary, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return summary, false, nil
}

// Invalidate drops cached summaries for the owner, called after homework or
// exam mutations.
func (s *DashboardService) Invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, fmt.Sprintf("dash:%s:*", ownerID)); err != nil {
		s.logger.Warn("dashboard cache invalidate failed", zap.String("owner", ownerID), zap.Error(err))
	}
}

// Summarize computes the dashboard from an already-projected event set. It is
// a pure function of (events, now): the lookahead window is inclusive at both
// ends and "today" compares local calendar days, ignoring time of day.
func (s *DashboardService) Summarize(events []models.Event, now time.Time) *dto.DashboardSummary {
	windowEnd := now.AddDate(0, 0, s.cfg.LookaheadDays)
	summary := &dto.DashboardSummary{}

	var upcoming []models.Event
	for _, event := range events {
		date := event.EffectiveDate()
		inWindow := !date.Before(now) && !date.After(windowEnd)

		if event.Kind == models.EventKindHomework && !event.Completed() {
			summary.PendingHomework++
		}
		if event.Kind == models.EventKindExam && !event.Completed() && inWindow {
			summary.UpcomingExams++
		}
		if event.Completed() && sameDay(date, now) {
			summary.CompletedToday++
		}
		if !event.Completed() && inWindow {
			upcoming = append(upcoming, event)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EffectiveDate().Before(upcoming[j].EffectiveDate())
	})
	if len(upcoming) > s.cfg.UpcomingEventsLimit {
		upcoming = upcoming[:s.cfg.UpcomingEventsLimit]
	}

	summary.UpcomingEvents = make([]dto.UpcomingEvent, 0, len(upcoming))
	for _, event := range upcoming {
		summary.UpcomingEvents = append(summary.UpcomingEvents, dto.UpcomingEvent{
			ID:      event.ID(),
			Kind:    string(event.Kind),
			Title:   event.Title(),
			Subject: event.Subject(),
			Date:    event.EffectiveDate().Format("2006-01-02"),
		})
	}
	return summary
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
