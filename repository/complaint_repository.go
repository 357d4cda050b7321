package repository

import (
	"context"

	"complaintdesk-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Insert appends a new complaint row. The database populates id and
// submitted_at; both are scanned back into the struct.
func (r *ComplaintRepository) Insert(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (
			student_name, email, title, description, type, file_url, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, submitted_at`

	err := r.db.QueryRow(
		ctx, query,
		complaint.StudentName,
		complaint.Email,
		complaint.Title,
		complaint.Description,
		complaint.Type,
		complaint.FileURL,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.SubmittedAt)

	return err
}

// List retrieves all complaints, newest first
func (r *ComplaintRepository) List(ctx context.Context) ([]*models.Complaint, error) {
	query := `
		SELECT id, student_name, email, title, description, type, file_url,
			status, assigned_to, submitted_at
		FROM complaints
		ORDER BY submitted_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint := &models.Complaint{}
		err := rows.Scan(
			&complaint.ID,
			&complaint.StudentName,
			&complaint.Email,
			&complaint.Title,
			&complaint.Description,
			&complaint.Type,
			&complaint.FileURL,
			&complaint.Status,
			&complaint.AssignedTo,
			&complaint.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	return complaints, rows.Err()
}

// Assign sets status and assignee for a complaint. The update is
// unconditional; a missing id affects zero rows and is not an error.
func (r *ComplaintRepository) Assign(ctx context.Context, id int64, assignee string) error {
	query := `
		UPDATE complaints
		SET status = $2, assigned_to = $3
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.StatusAssigned, assignee)
	return err
}

// UpdateStatus sets the status for a complaint, leaving assigned_to
// untouched. A missing id affects zero rows and is not an error.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	query := `
		UPDATE complaints
		SET status = $2
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	return err
}
