package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"complaintdesk-backend/models"
	"complaintdesk-backend/notify"
	"complaintdesk-backend/storage"

	"github.com/rs/zerolog"
)

// ComplaintStore is the persistence surface the service depends on
type ComplaintStore interface {
	Insert(ctx context.Context, complaint *models.Complaint) error
	List(ctx context.Context) ([]*models.Complaint, error)
	Assign(ctx context.Context, id int64, assignee string) error
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
}

// ComplaintService handles business logic for complaints
type ComplaintService struct {
	store    ComplaintStore
	storage  storage.Storage
	notifier notify.Notifier
	logger   zerolog.Logger
}

// ComplaintServiceOption is a functional option for ComplaintService
type ComplaintServiceOption func(*ComplaintService)

// WithComplaintStore sets the complaint store
func WithComplaintStore(store ComplaintStore) ComplaintServiceOption {
	return func(s *ComplaintService) {
		s.store = store
	}
}

// WithStorage sets the attachment storage backend
func WithStorage(st storage.Storage) ComplaintServiceOption {
	return func(s *ComplaintService) {
		s.storage = st
	}
}

// WithNotifier sets the notification backend
func WithNotifier(n notify.Notifier) ComplaintServiceOption {
	return func(s *ComplaintService) {
		s.notifier = n
	}
}

// WithLogger sets the service logger
func WithLogger(logger zerolog.Logger) ComplaintServiceOption {
	return func(s *ComplaintService) {
		s.logger = logger
	}
}

// NewComplaintService creates a new complaint service
func NewComplaintService(opts ...ComplaintServiceOption) *ComplaintService {
	s := &ComplaintService{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attachment is an uploaded file accompanying a submission
type Attachment struct {
	Filename    string
	Size        int64
	ContentType string
	Data        io.Reader
}

// SubmitComplaintRequest represents a request to submit a complaint
type SubmitComplaintRequest struct {
	StudentName string
	Email       string
	Title       string
	Description string
	Type        string
	Attachment  *Attachment
}

// SubmitComplaintResult represents the result of submitting a complaint
type SubmitComplaintResult struct {
	Complaint *models.Complaint
}

// SubmitComplaint uploads the attachment if present, persists the
// complaint with status Submitted, and dispatches a notification.
// Any stage failing aborts the submission; a blob uploaded before a
// persistence failure is not cleaned up.
func (s *ComplaintService) SubmitComplaint(ctx context.Context, req SubmitComplaintRequest) (*SubmitComplaintResult, error) {
	if s.store == nil {
		return nil, errors.New("complaint store not set")
	}

	if req.StudentName == "" || req.Email == "" || req.Title == "" || req.Description == "" || req.Type == "" {
		return nil, NewError(KindBadRequest, errors.New("student_name, email, title, description and type are required"))
	}

	var fileURL *string
	if req.Attachment != nil && req.Attachment.Filename != "" {
		if s.storage == nil {
			return nil, errors.New("storage not set")
		}

		url, err := s.storage.Upload(ctx, req.Attachment.Filename, req.Attachment.Data, req.Attachment.Size, req.Attachment.ContentType)
		if err != nil {
			s.logger.Error().Err(err).Str("filename", req.Attachment.Filename).Msg("attachment upload failed")
			return nil, NewError(KindUpload, fmt.Errorf("failed to upload attachment: %w", err))
		}
		fileURL = &url
	}

	complaint := &models.Complaint{
		StudentName: req.StudentName,
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		FileURL:     fileURL,
		Status:      models.StatusSubmitted,
	}

	if err := s.store.Insert(ctx, complaint); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist complaint")
		return nil, NewError(KindDatabase, fmt.Errorf("failed to save complaint: %w", err))
	}

	if s.notifier != nil {
		submission := notify.Submission{
			StudentName: complaint.StudentName,
			Email:       complaint.Email,
			Title:       complaint.Title,
			Description: complaint.Description,
			Type:        complaint.Type,
			FileURL:     complaint.FileURL,
			Status:      string(complaint.Status),
		}
		if err := s.notifier.Notify(ctx, submission); err != nil {
			s.logger.Error().Err(err).Int64("complaint_id", complaint.ID).Msg("failed to dispatch notification")
			return nil, NewError(KindNotify, fmt.Errorf("failed to dispatch notification: %w", err))
		}
	}

	s.logger.Info().Int64("complaint_id", complaint.ID).Str("type", complaint.Type).Msg("complaint submitted")

	return &SubmitComplaintResult{Complaint: complaint}, nil
}

// ListComplaintsResult represents the result of listing complaints
type ListComplaintsResult struct {
	Complaints []*models.Complaint
}

// ListComplaints lists all complaints, newest first
func (s *ComplaintService) ListComplaints(ctx context.Context) (*ListComplaintsResult, error) {
	if s.store == nil {
		return nil, errors.New("complaint store not set")
	}

	complaints, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list complaints")
		return nil, NewError(KindDatabase, fmt.Errorf("failed to fetch complaints: %w", err))
	}

	return &ListComplaintsResult{Complaints: complaints}, nil
}

// AssignComplaintRequest represents a request to assign a complaint
type AssignComplaintRequest struct {
	ID       int64
	Assignee string
}

// AssignComplaint sets the complaint status to Assigned and records the
// assignee. There is no existence check; assigning a missing id is a no-op
// reported as success.
func (s *ComplaintService) AssignComplaint(ctx context.Context, req AssignComplaintRequest) error {
	if s.store == nil {
		return errors.New("complaint store not set")
	}

	if req.ID <= 0 || req.Assignee == "" {
		return NewError(KindBadRequest, errors.New("id and assignee are required"))
	}

	if err := s.store.Assign(ctx, req.ID, req.Assignee); err != nil {
		s.logger.Error().Err(err).Int64("complaint_id", req.ID).Msg("failed to assign complaint")
		return NewError(KindDatabase, fmt.Errorf("failed to assign complaint: %w", err))
	}

	s.logger.Info().Int64("complaint_id", req.ID).Str("assignee", req.Assignee).Msg("complaint assigned")
	return nil
}

// UpdateStatusRequest represents a request to update a complaint's status
type UpdateStatusRequest struct {
	ID     int64
	Status string
}

// UpdateStatus overwrites the complaint status with the caller-supplied
// label. No transition table is enforced; any value may replace any other.
func (s *ComplaintService) UpdateStatus(ctx context.Context, req UpdateStatusRequest) error {
	if s.store == nil {
		return errors.New("complaint store not set")
	}

	if req.ID <= 0 || req.Status == "" {
		return NewError(KindBadRequest, errors.New("id and status are required"))
	}

	if err := s.store.UpdateStatus(ctx, req.ID, models.ComplaintStatus(req.Status)); err != nil {
		s.logger.Error().Err(err).Int64("complaint_id", req.ID).Msg("failed to update complaint status")
		return NewError(KindDatabase, fmt.Errorf("failed to update status: %w", err))
	}

	s.logger.Info().Int64("complaint_id", req.ID).Str("status", req.Status).Msg("complaint status updated")
	return nil
}
