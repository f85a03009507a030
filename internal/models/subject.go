package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ScheduleSlot is one weekly class block of a subject.
type ScheduleSlot struct {
	Day       string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required"` // "08:00"
	EndTime   string `json:"end_time" validate:"required"`   // "10:00"
}

// ScheduleSlots is stored as a JSONB column.
type ScheduleSlots []ScheduleSlot

// Value implements driver.Valuer.
func (s ScheduleSlots) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (s *ScheduleSlots) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported schedule source type %T", src)
	}
	return json.Unmarshal(raw, s)
}

// Subject represents a course the student is enrolled in. ProfessorID is a
// weak reference: it may point at a deleted professor and still be valid.
type Subject struct {
	ID          string        `db:"id" json:"id"`
	OwnerID     string        `db:"owner_id" json:"owner_id"`
	Name        string        `db:"name" json:"name"`
	ProfessorID *string       `db:"professor_id" json:"professor_id,omitempty"`
	Schedule    ScheduleSlots `db:"schedule" json:"schedule"`
	Color       string        `db:"color" json:"color"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

var dayLabels = map[string]string{
	"monday":    "Lunes",
	"tuesday":   "Martes",
	"wednesday": "Miércoles",
	"thursday":  "Jueves",
	"friday":    "Viernes",
	"saturday":  "Sábado",
	"sunday":    "Domingo",
}

// DayLabel returns the display label for a schedule day, falling back to the
// raw value for unknown days.
func DayLabel(day string) string {
	if label, ok := dayLabels[day]; ok {
		return label
	}
	return day
}

// PresetColors is the palette offered when creating a subject, and the pool
// used for deterministic color assignment on the calendar.
func PresetColors() []string {
	return []string{
		"#3B82F6", // blue
		"#EF4444", // red
		"#10B981", // green
		"#F59E0B", // yellow
		"#8B5CF6", // purple
		"#EC4899", // pink
		"#06B6D4", // cyan
		"#84CC16", // lime
		"#F97316", // orange
		"#6366F1", // indigo
	}
}
