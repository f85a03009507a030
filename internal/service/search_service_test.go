package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notas-claras/agenda-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func searchFixture() []models.Event {
	homework := []models.Homework{
		{ID: "hw-1", Title: "Tarea de Cálculo", Description: "Derivadas e integrales", Subject: "Matemáticas", DueDate: date(2024, 3, 5), Completed: false},
		{ID: "hw-2", Title: "Ensayo final", Description: "Revolución industrial", Subject: "Historia", DueDate: date(2024, 3, 12), Completed: true},
	}
	exams := []models.Exam{
		{ID: "ex-1", Title: "Examen de Física", Description: "Cinemática", Subject: "Física", ExamDate: date(2024, 3, 10), Completed: false},
	}
	return models.ProjectEvents(homework, exams)
}

func TestSearchFuzzyQueryToleratesMissingAccent(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	result := svc.Search(items, SearchFilters{Query: "calculo"})
	require.Len(t, result, 1)
	assert.Equal(t, "hw-1", result[0].ID())
}

func TestSearchEmptyQueryPreservesOrder(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	result := svc.Search(items, SearchFilters{})
	require.Len(t, result, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID(), result[i].ID())
	}
}

func TestSearchStatusFilter(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	completed := svc.Search(items, SearchFilters{Status: StatusCompleted})
	require.Len(t, completed, 1)
	assert.Equal(t, "hw-2", completed[0].ID())

	pending := svc.Search(items, SearchFilters{Status: StatusPending})
	assert.Len(t, pending, 2)

	all := svc.Search(items, SearchFilters{Status: StatusAll})
	assert.Len(t, all, 3)
}

func TestSearchScenarioCompletedYieldsEmpty(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := models.ProjectEvents(
		[]models.Homework{{ID: "hw-1", Title: "Tarea de Cálculo", Subject: "Matemáticas", DueDate: date(2024, 3, 5)}},
		[]models.Exam{{ID: "ex-1", Title: "Examen de Física", Subject: "Física", ExamDate: date(2024, 3, 10)}},
	)

	byQuery := svc.Search(items, SearchFilters{Query: "calculo"})
	require.Len(t, byQuery, 1)
	assert.Equal(t, "hw-1", byQuery[0].ID())

	assert.Empty(t, svc.Search(items, SearchFilters{Status: StatusCompleted}))
}

func TestSearchSubjectFilterIsCaseSensitiveExact(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	assert.Len(t, svc.Search(items, SearchFilters{Subject: "Matemáticas"}), 1)
	assert.Empty(t, svc.Search(items, SearchFilters{Subject: "matemáticas"}))
	assert.Empty(t, svc.Search(items, SearchFilters{Subject: "Matematicas"}))
}

func TestSearchTypeFilter(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	exams := svc.Search(items, SearchFilters{Type: TypeExam})
	require.Len(t, exams, 1)
	assert.Equal(t, models.EventKindExam, exams[0].Kind)

	homework := svc.Search(items, SearchFilters{Type: TypeHomework})
	assert.Len(t, homework, 2)
}

func TestSearchDateRangeInclusiveBounds(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	result := svc.Search(items, SearchFilters{DateRange: &DateRange{
		Start: date(2024, 3, 5),
		End:   date(2024, 3, 10),
	}})
	require.Len(t, result, 2)
	assert.Equal(t, "hw-1", result[0].ID())
	assert.Equal(t, "ex-1", result[1].ID())
}

func TestSearchIsIdempotentForEqualityFilters(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()
	filters := SearchFilters{Subject: "Historia", Status: StatusCompleted, Type: TypeHomework}

	once := svc.Search(items, filters)
	twice := svc.Search(once, filters)
	assert.Equal(t, once, twice)
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()
	original := make([]models.Event, len(items))
	copy(original, items)

	svc.Search(items, SearchFilters{Query: "fisica", Status: StatusPending})
	assert.Equal(t, original, items)
}

func TestSortByDateAndOrder(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	asc := svc.Sort(items, SortByDate, "asc")
	require.Len(t, asc, 3)
	assert.Equal(t, "hw-1", asc[0].ID())
	assert.Equal(t, "ex-1", asc[1].ID())
	assert.Equal(t, "hw-2", asc[2].ID())

	desc := svc.Sort(items, SortByDate, "desc")
	assert.Equal(t, "hw-2", desc[0].ID())
}

func TestSortByTypeAscListsExamsFirst(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	sorted := svc.Sort(items, SortByType, "asc")
	assert.Equal(t, models.EventKindExam, sorted[0].Kind)
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	homework := []models.Homework{
		{ID: "hw-1", Title: "Tarea", Subject: "A", DueDate: date(2024, 3, 1)},
		{ID: "hw-2", Title: "Tarea", Subject: "B", DueDate: date(2024, 3, 2)},
		{ID: "hw-3", Title: "Tarea", Subject: "C", DueDate: date(2024, 3, 3)},
	}
	items := svc.Sort(models.ProjectEvents(homework, nil), SortByDate, "asc")

	// Identical titles must keep their date order after a title sort.
	byTitle := svc.Sort(items, SortByTitle, "asc")
	assert.Equal(t, "hw-1", byTitle[0].ID())
	assert.Equal(t, "hw-2", byTitle[1].ID())
	assert.Equal(t, "hw-3", byTitle[2].ID())
}

func TestSortUnknownKeyKeepsInputOrder(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	sorted := svc.Sort(items, "priority", "asc")
	require.Len(t, sorted, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID(), sorted[i].ID())
	}
}

func TestDeriveOptionsCountsAndLabels(t *testing.T) {
	svc := NewSearchService(0.3, nil)
	items := searchFixture()

	options := svc.DeriveOptions(items, nil, nil)

	require.Len(t, options.Subjects, 3)
	assert.Equal(t, "Matemáticas", options.Subjects[0].Value)
	assert.Equal(t, 1, options.Subjects[0].Count)

	require.Len(t, options.Status, 3)
	assert.Equal(t, "Todos", options.Status[0].Label)
	assert.Equal(t, len(items), options.Status[0].Count)
	assert.Equal(t, options.Status[1].Count+options.Status[2].Count, len(items))

	require.Len(t, options.Types, 3)
	assert.Equal(t, "Tareas", options.Types[1].Label)
	assert.Equal(t, 2, options.Types[1].Count)
	assert.Equal(t, "Exámenes", options.Types[2].Label)
	assert.Equal(t, 1, options.Types[2].Count)
}

func TestDeriveOptionsEmptyItems(t *testing.T) {
	svc := NewSearchService(0.3, nil)

	options := svc.DeriveOptions(nil, nil, nil)
	assert.Empty(t, options.Subjects)
	for _, facet := range options.Status {
		assert.Zero(t, facet.Count)
	}
	for _, facet := range options.Types {
		assert.Zero(t, facet.Count)
	}
}
