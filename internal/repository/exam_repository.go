package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/notas-claras/agenda-api/internal/models"
)

// ExamRepository handles persistence for exams.
type ExamRepository struct {
	db *sqlx.DB
}

// NewExamRepository creates a new repository instance.
func NewExamRepository(db *sqlx.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

const examColumns = "id, owner_id, title, description, subject, exam_date, location, completed, created_at, updated_at"

// ListByOwner returns all exams for a user ordered by exam date.
func (r *ExamRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Exam, error) {
	query := fmt.Sprintf(`SELECT %s FROM exams WHERE owner_id = $1 ORDER BY exam_date ASC, created_at ASC`, examColumns)
	var exams []models.Exam
	if err := r.db.SelectContext(ctx, &exams, query, ownerID); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

// GetByID returns one exam record owned by the user.
func (r *ExamRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Exam, error) {
	query := fmt.Sprintf(`SELECT %s FROM exams WHERE owner_id = $1 AND id = $2`, examColumns)
	var exam models.Exam
	if err := r.db.GetContext(ctx, &exam, query, ownerID, id); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create persists a new exam record.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if exam.CreatedAt.IsZero() {
		exam.CreatedAt = now
	}
	exam.UpdatedAt = now

	const query = `INSERT INTO exams (id, owner_id, title, description, subject, exam_date, location, completed, created_at, updated_at)
		VALUES (:id, :owner_id, :title, :description, :subject, :exam_date, :location, :completed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, exam); err != nil {
		return fmt.Errorf("create exam: %w", err)
	}
	return nil
}

// Update modifies an exam record.
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	exam.UpdatedAt = time.Now().UTC()
	const query = `UPDATE exams SET title = :title, description = :description, subject = :subject,
		exam_date = :exam_date, location = :location, completed = :completed, updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id`
	if _, err := r.db.NamedExecContext(ctx, query, exam); err != nil {
		return fmt.Errorf("update exam: %w", err)
	}
	return nil
}

// Delete removes an owned exam record.
func (r *ExamRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM exams WHERE owner_id = $1 AND id = $2`, ownerID, id); err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	return nil
}
