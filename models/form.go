package models

// FormSummary describes one form offered by the intake server.
type FormSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
}
