package models

import "time"

// ComplaintStatus represents the lifecycle label of a complaint.
// Staff tooling may write other labels; the column is free text.
type ComplaintStatus string

const (
	StatusSubmitted ComplaintStatus = "Submitted"
	StatusAssigned  ComplaintStatus = "Assigned"
	StatusResolved  ComplaintStatus = "Resolved"
)

// SubmittedAtLayout is the display format for submission timestamps.
const SubmittedAtLayout = "2006-01-02 15:04:05"

// Complaint represents a student-submitted complaint
type Complaint struct {
	ID          int64           `json:"id"`
	StudentName string          `json:"student_name"`
	Email       string          `json:"email"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	FileURL     *string         `json:"file_url"`
	Status      ComplaintStatus `json:"status"`
	AssignedTo  *string         `json:"assigned_to,omitempty"`
	SubmittedAt *time.Time      `json:"-"`
}

// SubmittedAtDisplay formats the submission timestamp for dashboards,
// or returns "N/A" when the row carries no timestamp.
func (c *Complaint) SubmittedAtDisplay() string {
	if c.SubmittedAt == nil {
		return "N/A"
	}
	return c.SubmittedAt.Format(SubmittedAtLayout)
}
