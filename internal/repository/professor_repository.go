package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/notas-claras/agenda-api/internal/models"
)

// ProfessorRepository handles persistence for professors.
type ProfessorRepository struct {
	db *sqlx.DB
}

// NewProfessorRepository creates a new repository instance.
func NewProfessorRepository(db *sqlx.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

const professorColumns = "id, owner_id, name, email, phone, office_hours, subject, created_at, updated_at"

// ListByOwner returns all professors for a user ordered by name.
func (r *ProfessorRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Professor, error) {
	query := fmt.Sprintf(`SELECT %s FROM professors WHERE owner_id = $1 ORDER BY name ASC`, professorColumns)
	var professors []models.Professor
	if err := r.db.SelectContext(ctx, &professors, query, ownerID); err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return professors, nil
}

// GetByID returns one professor owned by the user.
func (r *ProfessorRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Professor, error) {
	query := fmt.Sprintf(`SELECT %s FROM professors WHERE owner_id = $1 AND id = $2`, professorColumns)
	var professor models.Professor
	if err := r.db.GetContext(ctx, &professor, query, ownerID, id); err != nil {
		return nil, err
	}
	return &professor, nil
}

// Create persists a new professor.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	if professor.ID == "" {
		professor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if professor.CreatedAt.IsZero() {
		professor.CreatedAt = now
	}
	professor.UpdatedAt = now

	const query = `INSERT INTO professors (id, owner_id, name, email, phone, office_hours, subject, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :email, :phone, :office_hours, :subject, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, professor); err != nil {
		return fmt.Errorf("create professor: %w", err)
	}
	return nil
}

// Update modifies a professor.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	professor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE professors SET name = :name, email = :email, phone = :phone,
		office_hours = :office_hours, subject = :subject, updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id`
	if _, err := r.db.NamedExecContext(ctx, query, professor); err != nil {
		return fmt.Errorf("update professor: %w", err)
	}
	return nil
}

// Delete removes an owned professor record.
func (r *ProfessorRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM professors WHERE owner_id = $1 AND id = $2`, ownerID, id); err != nil {
		return fmt.Errorf("delete professor: %w", err)
	}
	return nil
}
