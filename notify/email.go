package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailNotifier sends the complaint snapshot to a staff mailbox via SendGrid.
type EmailNotifier struct {
	apiKey string
	from   string
	to     string
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(apiKey, from, to string) *EmailNotifier {
	return &EmailNotifier{
		apiKey: apiKey,
		from:   from,
		to:     to,
	}
}

// Notify sends one notification email for the submitted complaint
func (n *EmailNotifier) Notify(ctx context.Context, submission Submission) error {
	if n.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	fileURL := "none"
	if submission.FileURL != nil {
		fileURL = *submission.FileURL
	}

	subject := fmt.Sprintf("New complaint: %s", submission.Title)
	textContent := fmt.Sprintf(
		"Student: %s <%s>\nType: %s\nStatus: %s\nAttachment: %s\n\n%s",
		submission.StudentName,
		submission.Email,
		submission.Type,
		submission.Status,
		fileURL,
		submission.Description,
	)

	from := mail.NewEmail("Complaint Desk", n.from)
	to := mail.NewEmail("", n.to)
	message := mail.NewSingleEmail(from, subject, to, textContent, "")

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send notification email, status code: %d", response.StatusCode)
	}

	return nil
}
