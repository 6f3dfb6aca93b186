package model

import "time"

// Activity is one append-only entry in the session's event log.
type Activity struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	RelatedID   string    `json:"related_id,omitempty"`
	RelatedName string    `json:"related_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
}

// Notification is a user-facing message about a system event.
type Notification struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	Type        string    `json:"type"` // "info", "success", "warning", "error"
	RelatedID   string    `json:"related_id,omitempty"`
	RelatedType string    `json:"related_type,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

// Task is a to-do item optionally linked to a lead or deal.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	DueDate       string     `json:"due_date"`
	AssignedTo    string     `json:"assigned_to"`
	RelatedTo     string     `json:"related_to,omitempty"`
	RelatedType   string     `json:"related_type,omitempty"`
	Priority      string     `json:"priority"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// Meeting is a scheduled appointment optionally linked to a lead or deal.
type Meeting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration_minutes"`
	Attendees   []string  `json:"attendees"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes,omitempty"`
	RelatedTo   string    `json:"related_to,omitempty"`
	RelatedType string    `json:"related_type,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
