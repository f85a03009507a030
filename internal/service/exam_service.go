package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

type examRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Exam, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Exam, error)
	Create(ctx context.Context, exam *models.Exam) error
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, ownerID, id string) error
}

// ExamService manages exam records for their owner.
type ExamService struct {
	repo      examRepository
	validator *validator.Validate
	logger    *zap.Logger
	dashboard dashboardInvalidator
}

// NewExamService constructs the service.
func NewExamService(repo examRepository, validate *validator.Validate, logger *zap.Logger, dashboard dashboardInvalidator) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{repo: repo, validator: validate, logger: logger, dashboard: dashboard}
}

// CreateExamRequest describes the create payload.
type CreateExamRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Subject     string    `json:"subject" validate:"required"`
	ExamDate    time.Time `json:"exam_date" validate:"required"`
	Location    *string   `json:"location,omitempty"`
}

// UpdateExamRequest describes a partial update.
type UpdateExamRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Subject     *string    `json:"subject,omitempty" validate:"omitempty,min=1"`
	ExamDate    *time.Time `json:"exam_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// List returns the owner's full exam set.
func (s *ExamService) List(ctx context.Context, ownerID string) ([]models.Exam, error) {
	exams, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
	}
	return exams, nil
}

// Get returns one exam record scoped to its owner.
func (s *ExamService) Get(ctx context.Context, ownerID, id string) (*models.Exam, error) {
	exam, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get exam")
	}
	return exam, nil
}

// Create registers a new exam record.
func (s *ExamService) Create(ctx context.Context, ownerID string, req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}
	exam := &models.Exam{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		ExamDate:    req.ExamDate,
		Location:    req.Location,
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam")
	}
	s.invalidate(ctx, ownerID)
	return exam, nil
}

// Update applies a partial update to an owned exam record.
func (s *ExamService) Update(ctx context.Context, ownerID, id string, req UpdateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}
	exam, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.Subject != nil {
		exam.Subject = *req.Subject
	}
	if req.ExamDate != nil {
		exam.ExamDate = *req.ExamDate
	}
	if req.Location != nil {
		exam.Location = req.Location
	}
	if req.Completed != nil {
		exam.Completed = *req.Completed
	}
	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exam")
	}
	s.invalidate(ctx, ownerID)
	return exam, nil
}

// ToggleComplete flips the completed flag.
func (s *ExamService) ToggleComplete(ctx context.Context, ownerID, id string) (*models.Exam, error) {
	exam, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	exam.Completed = !exam.Completed
	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exam")
	}
	s.invalidate(ctx, ownerID)
	return exam, nil
}

// Delete removes an owned exam record.
func (s *ExamService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exam")
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *ExamService) invalidate(ctx context.Context, ownerID string) {
	if s.dashboard != nil {
		s.dashboard.Invalidate(ctx, ownerID)
	}
}
