package record

import "time"

const (
	StatusNew        = "new"
	StatusUnanswered = "unanswered"
)

// Lead is a finalized customer contact record. Append-only.
type Lead struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	SessionID string    `json:"session_id"`
}

// Feedback is a finalized unanswered question or comment. Append-only.
type Feedback struct {
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Stats is a small business snapshot for the dashboard endpoint.
type Stats struct {
	TotalLeads    int `json:"total_leads"`
	TotalFeedback int `json:"total_feedback"`
	NewLeadsToday int `json:"new_leads_today"`
}
