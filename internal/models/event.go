package models

import "time"

// EventKind discriminates the two event variants.
type EventKind string

const (
	EventKindHomework EventKind = "homework"
	EventKindExam     EventKind = "exam"
)

// Event is the unified view of a homework or exam record. Exactly one of
// Homework/Exam is set, matching Kind. Events are derived on every projection
// pass and never persisted.
type Event struct {
	Kind     EventKind `json:"kind"`
	Homework *Homework `json:"homework,omitempty"`
	Exam     *Exam     `json:"exam,omitempty"`
}

// ProjectEvents merges homework and exam lists into one tagged sequence,
// homework first, preserving input order. No sorting, no deduplication.
func ProjectEvents(homework []Homework, exams []Exam) []Event {
	events := make([]Event, 0, len(homework)+len(exams))
	for i := range homework {
		events = append(events, Event{Kind: EventKindHomework, Homework: &homework[i]})
	}
	for i := range exams {
		events = append(events, Event{Kind: EventKindExam, Exam: &exams[i]})
	}
	return events
}

// EffectiveDate is the date used for chronological comparison: the due date
// for homework, the exam date for exams.
func (e Event) EffectiveDate() time.Time {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.DueDate
	case EventKindExam:
		return e.Exam.ExamDate
	}
	return time.Time{}
}

// ID returns the source record id.
func (e Event) ID() string {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.ID
	case EventKindExam:
		return e.Exam.ID
	}
	return ""
}

// Title returns the source record title.
func (e Event) Title() string {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.Title
	case EventKindExam:
		return e.Exam.Title
	}
	return ""
}

// Description returns the source record description.
func (e Event) Description() string {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.Description
	case EventKindExam:
		return e.Exam.Description
	}
	return ""
}

// Subject returns the denormalized subject name. It is free text and may not
// resolve to any Subject entity.
func (e Event) Subject() string {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.Subject
	case EventKindExam:
		return e.Exam.Subject
	}
	return ""
}

// Completed reports whether the source record is marked done.
func (e Event) Completed() bool {
	switch e.Kind {
	case EventKindHomework:
		return e.Homework.Completed
	case EventKindExam:
		return e.Exam.Completed
	}
	return false
}
