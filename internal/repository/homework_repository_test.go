package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notas-claras/agenda-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestHomeworkRepositoryListByOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "subject", "due_date", "link", "completed", "created_at", "updated_at"}).
		AddRow("hw1", "owner", "Ensayo", "", "Historia", time.Now(), nil, false, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, title, description, subject, due_date, link, completed, created_at, updated_at FROM homework WHERE owner_id = $1 ORDER BY due_date ASC, created_at ASC")).
		WithArgs("owner").
		WillReturnRows(rows)

	list, err := repo.ListByOwner(context.Background(), "owner")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ensayo", list[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryCreateAssignsIDAndTimestamps(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	mock.ExpectExec("INSERT INTO homework").
		WithArgs(sqlmock.AnyArg(), "owner", "Ensayo", "", "Historia", sqlmock.AnyArg(), sqlmock.AnyArg(), false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	hw := &models.Homework{OwnerID: "owner", Title: "Ensayo", Subject: "Historia", DueDate: time.Now()}
	require.NoError(t, repo.Create(context.Background(), hw))
	assert.NotEmpty(t, hw.ID)
	assert.False(t, hw.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryGetByIDMiss(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	mock.ExpectQuery("SELECT .* FROM homework WHERE owner_id").
		WithArgs("owner", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "owner", "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryDeleteScopedToOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM homework WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner", "hw1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "owner", "hw1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
