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

type homeworkRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Homework, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Homework, error)
	Create(ctx context.Context, homework *models.Homework) error
	Update(ctx context.Context, homework *models.Homework) error
	Delete(ctx context.Context, ownerID, id string) error
}

type dashboardInvalidator interface {
	Invalidate(ctx context.Context, ownerID string)
}

// HomeworkService manages homework records for their owner.
type HomeworkService struct {
	repo      homeworkRepository
	validator *validator.Validate
	logger    *zap.Logger
	dashboard dashboardInvalidator
}

// NewHomeworkService constructs the service.
func NewHomeworkService(repo homeworkRepository, validate *validator.Validate, logger *zap.Logger, dashboard dashboardInvalidator) *HomeworkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkService{repo: repo, validator: validate, logger: logger, dashboard: dashboard}
}

// CreateHomeworkRequest describes the create payload.
type CreateHomeworkRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Subject     string    `json:"subject" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Link        *string   `json:"link,omitempty" validate:"omitempty,url"`
}

// UpdateHomeworkRequest describes a partial update. Nil fields are left
// untouched; owner and creation timestamp are never writable.
type UpdateHomeworkRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Subject     *string    `json:"subject,omitempty" validate:"omitempty,min=1"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Link        *string    `json:"link,omitempty" validate:"omitempty,url"`
	Completed   *bool      `json:"completed,omitempty"`
}

// List returns the owner's full homework set.
func (s *HomeworkService) List(ctx context.Context, ownerID string) ([]models.Homework, error) {
	homework, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list homework")
	}
	return homework, nil
}

// Get returns one homework record scoped to its owner.
func (s *HomeworkService) Get(ctx context.Context, ownerID, id string) (*models.Homework, error) {
	homework, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "homework not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get homework")
	}
	return homework, nil
}

// Create registers a new homework record.
func (s *HomeworkService) Create(ctx context.Context, ownerID string, req CreateHomeworkRequest) (*models.Homework, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework payload")
	}
	homework := &models.Homework{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Link:        req.Link,
	}
	if err := s.repo.Create(ctx, homework); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create homework")
	}
	s.invalidate(ctx, ownerID)
	return homework, nil
}

// Update applies a partial update to an owned homework record.
func (s *HomeworkService) Update(ctx context.Context, ownerID, id string, req UpdateHomeworkRequest) (*models.Homework, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework payload")
	}
	homework, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		homework.Title = *req.Title
	}
	if req.Description != nil {
		homework.Description = *req.Description
	}
	if req.Subject != nil {
		homework.Subject = *req.Subject
	}
	if req.DueDate != nil {
		homework.DueDate = *req.DueDate
	}
	if req.Link != nil {
		homework.Link = req.Link
	}
	if req.Completed != nil {
		homework.Completed = *req.Completed
	}
	if err := s.repo.Update(ctx, homework); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update homework")
	}
	s.invalidate(ctx, ownerID)
	return homework, nil
}

// ToggleComplete flips the completed flag, the one-tap action on the calendar.
func (s *HomeworkService) ToggleComplete(ctx context.Context, ownerID, id string) (*models.Homework, error) {
	homework, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	homework.Completed = !homework.Completed
	if err := s.repo.Update(ctx, homework); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update homework")
	}
	s.invalidate(ctx, ownerID)
	return homework, nil
}

// Delete removes an owned homework record.
func (s *HomeworkService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete homework")
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *HomeworkService) invalidate(ctx context.Context, ownerID string) {
	if s.dashboard != nil {
		s.dashboard.Invalidate(ctx, ownerID)
	}
}
