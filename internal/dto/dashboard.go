package dto

// DashboardSummary aggregates the counters and the short upcoming list shown
// on the home screen.
type DashboardSummary struct {
	PendingHomework int             `json:"pendingHomework"`
	UpcomingExams   int             `json:"upcomingExams"`
	CompletedToday  int             `json:"completedToday"`
	UpcomingEvents  []UpcomingEvent `json:"upcomingEvents"`
}

// UpcomingEvent is a simplified event entry for the dashboard list.
type UpcomingEvent struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}
