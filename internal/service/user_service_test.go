package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notas-claras/agenda-api/internal/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func TestUserServiceProfileIncompleteUntilBirthDate(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "ana@example.com", DisplayName: "Ana"},
	}}
	svc := NewUserService(repo, validator.New(), zap.NewNop())

	profile, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, profile.Complete)

	birth := time.Date(2003, time.June, 14, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), "u1", UpdateProfileRequest{BirthDate: &birth})
	require.NoError(t, err)
	assert.True(t, updated.Complete)
}

func TestUserServiceUpdateKeepsUnsetFields(t *testing.T) {
	university := "UNAM"
	repo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "ana@example.com", DisplayName: "Ana", University: &university},
	}}
	svc := NewUserService(repo, validator.New(), zap.NewNop())

	section := "B-12"
	profile, err := svc.Update(context.Background(), "u1", UpdateProfileRequest{Section: &section})
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.DisplayName)
	require.NotNil(t, profile.University)
	assert.Equal(t, "UNAM", *profile.University)
	require.NotNil(t, profile.Section)
	assert.Equal(t, "B-12", *profile.Section)
}
