package models

import "time"

// User represents an application user with their academic profile.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	DisplayName  string     `db:"display_name" json:"display_name"`
	BirthDate    *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	University   *string    `db:"university" json:"university,omitempty"`
	Section      *string    `db:"section" json:"section,omitempty"`
	Carrera      *string    `db:"carrera" json:"carrera,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ProfileComplete reports whether registration finished. The app keeps
// redirecting to the registration form until the birth date is filled in.
func (u *User) ProfileComplete() bool {
	return u != nil && u.BirthDate != nil
}
