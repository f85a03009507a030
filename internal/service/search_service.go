package service

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
	"github.com/notas-claras/agenda-api/pkg/textmatch"
)

// Status filter values.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Type filter values.
const (
	TypeAll      = "all"
	TypeHomework = "homework"
	TypeExam     = "exam"
)

// Sort keys.
const (
	SortByDate    = "date"
	SortByTitle   = "title"
	SortBySubject = "subject"
	SortByType    = "type"
)

// Field weights for fuzzy matching, from most to least significant.
const (
	titleWeight       = 0.4
	descriptionWeight = 0.3
	subjectWeight     = 0.3
)

// DateRange is an inclusive effective-date window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SearchFilters narrows the combined homework+exam set. Zero values mean
// "filter not active": an empty query, empty subject, empty or "all" status
// and type, and a nil date range never narrow the result.
type SearchFilters struct {
	Query     string     `json:"query"`
	Subject   string     `json:"subject"`
	Status    string     `json:"status"`
	Type      string     `json:"type"`
	DateRange *DateRange `json:"date_range,omitempty"`
}

// SearchService filters, ranks and sorts projected events. All methods are
// pure: inputs are never mutated and repeated calls yield identical results.
type SearchService struct {
	threshold float64
	logger    *zap.Logger
}

// NewSearchService constructs the service. threshold is the fuzzy match
// cutoff: 0 admits exact matches only, 1 admits anything.
func NewSearchService(threshold float64, logger *zap.Logger) *SearchService {
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{threshold: threshold, logger: logger}
}

// Search applies the filter stages in fixed order: fuzzy query, subject,
// status, type, date range. The query stage reorders survivors by descending
// relevance; every later stage preserves order.
func (s *SearchService) Search(items []models.Event, filters SearchFilters) []models.Event {
	filtered := make([]models.Event, len(items))
	copy(filtered, items)

	if query := strings.TrimSpace(filters.Query); query != "" {
		filtered = s.rankByQuery(filtered, query)
	}

	if filters.Subject != "" {
		filtered = keep(filtered, func(e models.Event) bool {
			return e.Subject() == filters.Subject
		})
	}

	if filters.Status != "" && filters.Status != StatusAll {
		wantCompleted := filters.Status == StatusCompleted
		filtered = keep(filtered, func(e models.Event) bool {
			return e.Completed() == wantCompleted
		})
	}

	if filters.Type != "" && filters.Type != TypeAll {
		filtered = keep(filtered, func(e models.Event) bool {
			return string(e.Kind) == filters.Type
		})
	}

	if r := filters.DateRange; r != nil {
		filtered = keep(filtered, func(e models.Event) bool {
			d := e.EffectiveDate()
			return !d.Before(r.Start) && !d.After(r.End)
		})
	}

	return filtered
}

type scoredEvent struct {
	event     models.Event
	relevance float64
}

func (s *SearchService) rankByQuery(items []models.Event, query string) []models.Event {
	scored := make([]scoredEvent, 0, len(items))
	for _, item := range items {
		relevance, ok := s.score(item, query)
		if !ok {
			continue
		}
		scored = append(scored, scoredEvent{event: item, relevance: relevance})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].relevance > scored[j].relevance
	})
	result := make([]models.Event, len(scored))
	for i, sc := range scored {
		result[i] = sc.event
	}
	return result
}

// score rates an event against the query across the weighted fields. An event
// matches when at least one field clears the threshold; its relevance sums the
// weighted closeness of every clearing field.
func (s *SearchService) score(e models.Event, query string) (float64, bool) {
	fields := []struct {
		text   string
		weight float64
	}{
		{e.Title(), titleWeight},
		{e.Description(), descriptionWeight},
		{e.Subject(), subjectWeight},
	}

	var relevance float64
	matched := false
	for _, field := range fields {
		score := textmatch.Score(query, field.text)
		if score <= s.threshold {
			matched = true
			relevance += field.weight * (1 - score)
		}
	}
	return relevance, matched
}

// Sort returns a new slice ordered by the given key. Title and subject compare
// case-insensitively; type compares the kind tag lexically. The sort is stable
// and an unknown key returns the input order unchanged.
func (s *SearchService) Sort(items []models.Event, sortBy, order string) []models.Event {
	sorted := make([]models.Event, len(items))
	copy(sorted, items)

	var less func(a, b models.Event) bool
	switch sortBy {
	case SortByDate:
		less = func(a, b models.Event) bool { return a.EffectiveDate().Before(b.EffectiveDate()) }
	case SortByTitle:
		less = func(a, b models.Event) bool {
			return strings.ToLower(a.Title()) < strings.ToLower(b.Title())
		}
	case SortBySubject:
		less = func(a, b models.Event) bool {
			return strings.ToLower(a.Subject()) < strings.ToLower(b.Subject())
		}
	case SortByType:
		less = func(a, b models.Event) bool { return a.Kind < b.Kind }
	default:
		return sorted
	}

	descending := strings.EqualFold(order, "desc")
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// DeriveOptions computes the facet values and counts for the filter panel.
// The subject facet reflects the subjects actually used by items, not the
// configured subject list; subjects and professors are accepted for callers
// that already hold them but the counts come from items alone.
func (s *SearchService) DeriveOptions(items []models.Event, _ []models.Subject, _ []models.Professor) dto.FilterOptions {
	var subjectOrder []string
	subjectCounts := make(map[string]int)
	var pending, completed, homeworkCount, examCount int

	for _, item := range items {
		if name := item.Subject(); name != "" {
			if _, seen := subjectCounts[name]; !seen {
				subjectOrder = append(subjectOrder, name)
			}
			subjectCounts[name]++
		}
		if item.Completed() {
			completed++
		} else {
			pending++
		}
		switch item.Kind {
		case models.EventKindHomework:
			homeworkCount++
		case models.EventKindExam:
			examCount++
		}
	}

	subjects := make([]dto.FacetOption, 0, len(subjectOrder))
	for _, name := range subjectOrder {
		subjects = append(subjects, dto.FacetOption{Value: name, Label: name, Count: subjectCounts[name]})
	}

	total := len(items)
	return dto.FilterOptions{
		Subjects: subjects,
		Status: []dto.FacetOption{
			{Value: StatusAll, Label: "Todos", Count: total},
			{Value: StatusPending, Label: "Pendientes", Count: pending},
			{Value: StatusCompleted, Label: "Completados", Count: completed},
		},
		Types: []dto.FacetOption{
			{Value: TypeAll, Label: "Todos", Count: total},
			{Value: TypeHomework, Label: "Tareas", Count: homeworkCount},
			{Value: TypeExam, Label: "Exámenes", Count: examCount},
		},
	}
}

func keep(items []models.Event, pred func(models.Event) bool) []models.Event {
	result := items[:0:0]
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}
