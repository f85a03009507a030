package dto

// CalendarEventEntry is one event rendered inside a day cell.
type CalendarEventEntry struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

// CalendarCell is one cell of the month grid. Leading cells before the 1st
// have a zero Day and empty Date.
type CalendarCell struct {
	Day    int                  `json:"day,omitempty"`
	Date   string               `json:"date,omitempty"`
	Events []CalendarEventEntry `json:"events,omitempty"`
}

// CalendarMonth is the Sunday-first month grid with per-day event buckets.
type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}
