package dto

import "github.com/notas-claras/agenda-api/internal/models"

// ProfessorUnassigned is shown when a subject has no professor or its
// professor reference points at a deleted record.
const ProfessorUnassigned = "Sin asignar"

// SubjectView is a subject enriched with its resolved professor name.
type SubjectView struct {
	models.Subject
	ProfessorName string `json:"professor_name"`
}
