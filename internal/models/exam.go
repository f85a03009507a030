package models

import "time"

// Exam represents a scheduled exam tracked by a student.
type Exam struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Subject     string    `db:"subject" json:"subject"`
	ExamDate    time.Time `db:"exam_date" json:"exam_date"`
	Location    *string   `db:"location" json:"location,omitempty"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
