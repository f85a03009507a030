package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/dto"
	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

type subjectRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Subject, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, ownerID, id string) error
}

type professorFinder interface {
	GetByID(ctx context.Context, ownerID, id string) (*models.Professor, error)
}

// SubjectService manages the owner's subjects and resolves their professor
// references. A professor reference is weak: it may point at a deleted
// professor, in which case the display name degrades to a fallback.
type SubjectService struct {
	repo       subjectRepository
	professors professorFinder
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewSubjectService constructs the service.
func NewSubjectService(repo subjectRepository, professors professorFinder, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, professors: professors, validator: validate, logger: logger}
}

// CreateSubjectRequest describes the create payload.
type CreateSubjectRequest struct {
	Name        string               `json:"name" validate:"required"`
	ProfessorID *string              `json:"professor_id,omitempty"`
	Schedule    models.ScheduleSlots `json:"schedule" validate:"omitempty,dive"`
	Color       string               `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateSubjectRequest describes a partial update.
type UpdateSubjectRequest struct {
	Name        *string               `json:"name,omitempty" validate:"omitempty,min=1"`
	ProfessorID *string               `json:"professor_id,omitempty"`
	Schedule    *models.ScheduleSlots `json:"schedule,omitempty" validate:"omitempty,dive"`
	Color       *string               `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// List returns the owner's subjects with professor names resolved.
func (s *SubjectService) List(ctx context.Context, ownerID string) ([]dto.SubjectView, error) {
	subjects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	views := make([]dto.SubjectView, 0, len(subjects))
	for _, subject := range subjects {
		views = append(views, dto.SubjectView{
			Subject:       subject,
			ProfessorName: s.resolveProfessor(ctx, ownerID, subject.ProfessorID),
		})
	}
	return views, nil
}

// Get returns one subject with its professor name resolved.
func (s *SubjectService) Get(ctx context.Context, ownerID, id string) (*dto.SubjectView, error) {
	subject, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get subject")
	}
	return &dto.SubjectView{
		Subject:       *subject,
		ProfessorName: s.resolveProfessor(ctx, ownerID, subject.ProfessorID),
	}, nil
}

// Create registers a new subject. When no color is supplied the subject gets
// its deterministic palette color so the calendar stays consistent.
func (s *SubjectService) Create(ctx context.Context, ownerID string, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	color := req.Color
	if color == "" {
		color = hashColor(req.Name)
	}
	subject := &models.Subject{
		OwnerID:     ownerID,
		Name:        req.Name,
		ProfessorID: req.ProfessorID,
		Schedule:    req.Schedule,
		Color:       color,
	}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return subject, nil
}

// Update applies a partial update to an owned subject.
func (s *SubjectService) Update(ctx context.Context, ownerID, id string, req UpdateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	subject, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get subject")
	}
	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.ProfessorID != nil {
		subject.ProfessorID = req.ProfessorID
	}
	if req.Schedule != nil {
		subject.Schedule = *req.Schedule
	}
	if req.Color != nil {
		subject.Color = *req.Color
	}
	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update subject")
	}
	return subject, nil
}

// Delete removes an owned subject. Homework and exams referencing the
// subject by name are untouched; they fall back to the hashed color.
func (s *SubjectService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.repo.GetByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get subject")
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	return nil
}

func (s *SubjectService) resolveProfessor(ctx context.Context, ownerID string, professorID *string) string {
	if professorID == nil || *professorID == "" {
		return dto.ProfessorUnassigned
	}
	professor, err := s.professors.GetByID(ctx, ownerID, *professorID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to resolve professor", zap.String("professor_id", *professorID), zap.Error(err))
		}
		return dto.ProfessorUnassigned
	}
	return professor.Name
}
