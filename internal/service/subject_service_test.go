package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

type fakeSubjectRepo struct {
	subjects map[string]*models.Subject
	created  *models.Subject
}

func (f *fakeSubjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Subject, error) {
	var out []models.Subject
	for _, subject := range f.subjects {
		if subject.OwnerID == ownerID {
			out = append(out, *subject)
		}
	}
	return out, nil
}

func (f *fakeSubjectRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Subject, error) {
	subject, ok := f.subjects[id]
	if !ok || subject.OwnerID != ownerID {
		return nil, sql.ErrNoRows
	}
	copied := *subject
	return &copied, nil
}

func (f *fakeSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	subject.ID = "subj-new"
	f.created = subject
	return nil
}

func (f *fakeSubjectRepo) Update(ctx context.Context, subject *models.Subject) error {
	f.subjects[subject.ID] = subject
	return nil
}

func (f *fakeSubjectRepo) Delete(ctx context.Context, ownerID, id string) error {
	delete(f.subjects, id)
	return nil
}

type fakeProfessorFinder struct {
	professors map[string]*models.Professor
}

func (f *fakeProfessorFinder) GetByID(ctx context.Context, ownerID, id string) (*models.Professor, error) {
	professor, ok := f.professors[id]
	if !ok || professor.OwnerID != ownerID {
		return nil, sql.ErrNoRows
	}
	return professor, nil
}

func TestSubjectServiceResolvesProfessorName(t *testing.T) {
	profID := "prof-1"
	repo := &fakeSubjectRepo{subjects: map[string]*models.Subject{
		"subj-1": {ID: "subj-1", OwnerID: "owner", Name: "Cálculo", ProfessorID: &profID, Color: "#3B82F6"},
	}}
	finder := &fakeProfessorFinder{professors: map[string]*models.Professor{
		"prof-1": {ID: "prof-1", OwnerID: "owner", Name: "Dra. Ríos"},
	}}
	svc := NewSubjectService(repo, finder, validator.New(), zap.NewNop())

	view, err := svc.Get(context.Background(), "owner", "subj-1")
	require.NoError(t, err)
	assert.Equal(t, "Dra. Ríos", view.ProfessorName)
}

func TestSubjectServiceDanglingProfessorFallsBack(t *testing.T) {
	goneID := "prof-gone"
	repo := &fakeSubjectRepo{subjects: map[string]*models.Subject{
		"subj-1": {ID: "subj-1", OwnerID: "owner", Name: "Física", ProfessorID: &goneID},
	}}
	svc := NewSubjectService(repo, &fakeProfessorFinder{}, validator.New(), zap.NewNop())

	view, err := svc.Get(context.Background(), "owner", "subj-1")
	require.NoError(t, err)
	assert.Equal(t, dto.ProfessorUnassigned, view.ProfessorName)
}

func TestSubjectServiceCreateAssignsPaletteColor(t *testing.T) {
	repo := &fakeSubjectRepo{subjects: map[string]*models.Subject{}}
	svc := NewSubjectService(repo, &fakeProfessorFinder{}, validator.New(), zap.NewNop())

	subject, err := svc.Create(context.Background(), "owner", CreateSubjectRequest{Name: "Historia"})
	require.NoError(t, err)
	assert.Contains(t, models.PresetColors(), subject.Color)
	assert.Equal(t, hashColor("Historia"), subject.Color)
}

func TestSubjectServiceCreateRejectsInvalidSchedule(t *testing.T) {
	repo := &fakeSubjectRepo{subjects: map[string]*models.Subject{}}
	svc := NewSubjectService(repo, &fakeProfessorFinder{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), "owner", CreateSubjectRequest{
		Name:     "Química",
		Schedule: models.ScheduleSlots{{Day: "someday", StartTime: "08:00", EndTime: "10:00"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSubjectServiceGetNotFound(t *testing.T) {
	repo := &fakeSubjectRepo{subjects: map[string]*models.Subject{}}
	svc := NewSubjectService(repo, &fakeProfessorFinder{}, validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), "owner", "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
