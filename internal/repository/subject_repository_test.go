package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notas-claras/agenda-api/internal/models"
)

func TestSubjectRepositoryScheduleRoundTrip(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	schedule := `[{"day":"monday","start_time":"08:00","end_time":"10:00"}]`
	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "professor_id", "schedule", "color", "created_at", "updated_at"}).
		AddRow("s1", "owner", "Cálculo", nil, []byte(schedule), "#3B82F6", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, name, professor_id, schedule, color, created_at, updated_at FROM subjects WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner", "s1").
		WillReturnRows(rows)

	subject, err := repo.GetByID(context.Background(), "owner", "s1")
	require.NoError(t, err)
	require.Len(t, subject.Schedule, 1)
	assert.Equal(t, "monday", subject.Schedule[0].Day)
	assert.Equal(t, "08:00", subject.Schedule[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectExec("INSERT INTO subjects").
		WithArgs(sqlmock.AnyArg(), "owner", "Cálculo", sqlmock.AnyArg(), sqlmock.AnyArg(), "#3B82F6", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	subject := &models.Subject{
		OwnerID:  "owner",
		Name:     "Cálculo",
		Color:    "#3B82F6",
		Schedule: models.ScheduleSlots{{Day: "monday", StartTime: "08:00", EndTime: "10:00"}},
	}
	require.NoError(t, repo.Create(context.Background(), subject))
	assert.NotEmpty(t, subject.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryListByOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "professor_id", "schedule", "color", "created_at", "updated_at"}).
		AddRow("s1", "owner", "Cálculo", nil, []byte("[]"), "#3B82F6", time.Now(), time.Now()).
		AddRow("s2", "owner", "Física", nil, []byte("[]"), "#EF4444", time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM subjects WHERE owner_id").
		WithArgs("owner").
		WillReturnRows(rows)

	subjects, err := repo.ListByOwner(context.Background(), "owner")
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
