// Package notify dispatches a notification to staff when a complaint is
// submitted, either as a JSON POST to a webhook or as an email.
package notify

import (
	"context"
	"fmt"

	"complaintdesk-backend/config"
)

// Submission is the complaint snapshot carried by a notification.
type Submission struct {
	StudentName string  `json:"student_name"`
	Email       string  `json:"email"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	FileURL     *string `json:"file_url"`
	Status      string  `json:"status"`
}

// Notifier dispatches one notification per submitted complaint
type Notifier interface {
	Notify(ctx context.Context, submission Submission) error
}

// NewNotifier creates a notification backend from configuration
func NewNotifier(cfg *config.Config) (Notifier, error) {
	switch cfg.NotifierType {
	case config.NotifierTypeWebhook:
		return NewWebhookNotifier(cfg.WebhookURL), nil
	case config.NotifierTypeEmail:
		return NewEmailNotifier(cfg.SendGridKey, cfg.NotifyFrom, cfg.NotifyTo), nil
	default:
		return nil, fmt.Errorf("unknown notifier type: %s", cfg.NotifierType)
	}
}
