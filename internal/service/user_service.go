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

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
}

// UserService exposes the academic profile of the signed-in student.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// Profile is the user payload with the registration completion flag. Clients
// keep redirecting to the registration form while Complete is false.
type Profile struct {
	models.User
	Complete bool `json:"complete"`
}

// UpdateProfileRequest describes a partial profile update.
type UpdateProfileRequest struct {
	DisplayName *string    `json:"display_name,omitempty" validate:"omitempty,min=1"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	University  *string    `json:"university,omitempty"`
	Section     *string    `json:"section,omitempty"`
	Carrera     *string    `json:"carrera,omitempty"`
}

// Get returns the user's profile.
func (s *UserService) Get(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return &Profile{User: *user, Complete: user.ProfileComplete()}, nil
}

// Update applies a partial profile update and returns the fresh profile.
func (s *UserService) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}
	if req.University != nil {
		user.University = req.University
	}
	if req.Section != nil {
		user.Section = req.Section
	}
	if req.Carrera != nil {
		user.Carrera = req.Carrera
	}
	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return &Profile{User: *user, Complete: user.ProfileComplete()}, nil
}
