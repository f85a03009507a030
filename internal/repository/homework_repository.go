package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/notas-claras/agenda-api/internal/models"
)

// HomeworkRepository handles persistence for homework. Every query is scoped
// to the owning user.
type HomeworkRepository struct {
	db *sqlx.DB
}

// NewHomeworkRepository creates a new repository instance.
func NewHomeworkRepository(db *sqlx.DB) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

const homeworkColumns = "id, owner_id, title, description, subject, due_date, link, completed, created_at, updated_at"

// ListByOwner returns all homework for a user ordered by due date.
func (r *HomeworkRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework WHERE owner_id = $1 ORDER BY due_date ASC, created_at ASC`, homeworkColumns)
	var homework []models.Homework
	if err := r.db.SelectContext(ctx, &homework, query, ownerID); err != nil {
		return nil, fmt.Errorf("list homework: %w", err)
	}
	return homework, nil
}

// GetByID returns one homework record owned by the user.
func (r *HomeworkRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework WHERE owner_id = $1 AND id = $2`, homeworkColumns)
	var homework models.Homework
	if err := r.db.GetContext(ctx, &homework, query, ownerID, id); err != nil {
		return nil, err
	}
	return &homework, nil
}

// Create persists a new homework record.
func (r *HomeworkRepository) Create(ctx context.Context, homework *models.Homework) error {
	if homework.ID == "" {
		homework.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if homework.CreatedAt.IsZero() {
		homework.CreatedAt = now
	}
	homework.UpdatedAt = now

	const query = `INSERT INTO homework (id, owner_id, title, description, subject, due_date, link, completed, created_at, updated_at)
		VALUES (:id, :owner_id, :title, :description, :subject, :due_date, :link, :completed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, homework); err != nil {
		return fmt.Errorf("create homework: %w", err)
	}
	return nil
}

// Update modifies a homework record.
func (r *HomeworkRepository) Update(ctx context.Context, homework *models.Homework) error {
	homework.UpdatedAt = time.Now().UTC()
	const query = `UPDATE homework SET title = :title, description = :description, subject = :subject,
		due_date = :due_date, link = :link, completed = :completed, updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id`
	if _, err := r.db.NamedExecContext(ctx, query, homework); err != nil {
		return fmt.Errorf("update homework: %w", err)
	}
	return nil
}

// Delete removes an owned homework record.
func (r *HomeworkRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM homework WHERE owner_id = $1 AND id = $2`, ownerID, id); err != nil {
		return fmt.Errorf("delete homework: %w", err)
	}
	return nil
}
