package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/notas-claras/agenda-api/internal/models"
)

// SubjectRepository handles persistence for subjects. The schedule column is
// JSONB and round-trips through models.ScheduleSlots.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new repository instance.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

const subjectColumns = "id, owner_id, name, professor_id, schedule, color, created_at, updated_at"

// ListByOwner returns all subjects for a user ordered by name.
func (r *SubjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Subject, error) {
	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE owner_id = $1 ORDER BY name ASC`, subjectColumns)
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, ownerID); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// GetByID returns one subject owned by the user.
func (r *SubjectRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Subject, error) {
	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE owner_id = $1 AND id = $2`, subjectColumns)
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, ownerID, id); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create persists a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = now
	}
	subject.UpdatedAt = now

	const query = `INSERT INTO subjects (id, owner_id, name, professor_id, schedule, color, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :professor_id, :schedule, :color, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

// Update modifies a subject.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	subject.UpdatedAt = time.Now().UTC()
	const query = `UPDATE subjects SET name = :name, professor_id = :professor_id, schedule = :schedule,
		color = :color, updated_at = :updated_at WHERE id = :id AND owner_id = :owner_id`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	return nil
}

// Delete removes an owned subject record.
func (r *SubjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE owner_id = $1 AND id = $2`, ownerID, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}
