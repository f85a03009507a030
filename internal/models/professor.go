package models

import "time"

// Professor represents an instructor the student registered for lookup.
type Professor struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	Name        string    `db:"name" json:"name"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	OfficeHours *string   `db:"office_hours" json:"office_hours,omitempty"`
	Subject     string    `db:"subject" json:"subject"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
