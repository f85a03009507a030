package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
	appErrors "github.com/notas-claras/agenda-api/pkg/errors"
)

type professorRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Professor, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
	Update(ctx context.Context, professor *models.Professor) error
	Delete(ctx context.Context, ownerID, id string) error
}

// ProfessorService manages the owner's professor directory.
type ProfessorService struct {
	repo      professorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessorService constructs the service.
func NewProfessorService(repo professorRepository, validate *validator.Validate, logger *zap.Logger) *ProfessorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessorService{repo: repo, validator: validate, logger: logger}
}

// CreateProfessorRequest describes the create payload.
type CreateProfessorRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	OfficeHours *string `json:"office_hours,omitempty"`
	Subject     string  `json:"subject"`
}

// UpdateProfessorRequest describes a partial update.
type UpdateProfessorRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	OfficeHours *string `json:"office_hours,omitempty"`
	Subject     *string `json:"subject,omitempty"`
}

// List returns the owner's professors.
func (s *ProfessorService) List(ctx context.Context, ownerID string) ([]models.Professor, error) {
	professors, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list professors")
	}
	return professors, nil
}

// Get returns one professor record scoped to its owner.
func (s *ProfessorService) Get(ctx context.Context, ownerID, id string) (*models.Professor, error) {
	professor, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get professor")
	}
	return professor, nil
}

// Create registers a new professor record.
func (s *ProfessorService) Create(ctx context.Context, ownerID string, req CreateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}
	professor := &models.Professor{
		OwnerID:     ownerID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		OfficeHours: req.OfficeHours,
		Subject:     req.Subject,
	}
	if err := s.repo.Create(ctx, professor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create professor")
	}
	return professor, nil
}

// Update applies a partial update to an owned professor record.
func (s *ProfessorService) Update(ctx context.Context, ownerID, id string, req UpdateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}
	professor, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		professor.Name = *req.Name
	}
	if req.Email != nil {
		professor.Email = req.Email
	}
	if req.Phone != nil {
		professor.Phone = req.Phone
	}
	if req.OfficeHours != nil {
		professor.OfficeHours = req.OfficeHours
	}
	if req.Subject != nil {
		professor.Subject = *req.Subject
	}
	if err := s.repo.Update(ctx, professor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update professor")
	}
	return professor, nil
}

// Delete removes an owned professor record. Subjects keep their reference;
// lookups degrade to the unassigned fallback.
func (s *ProfessorService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete professor")
	}
	return nil
}
