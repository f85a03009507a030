package models

import "time"

// Homework represents an assignment tracked by a student.
type Homework struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Subject     string    `db:"subject" json:"subject"`
	DueDate     time.Time `db:"due_date" json:"due_date"`
	Link        *string   `db:"link" json:"link,omitempty"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
