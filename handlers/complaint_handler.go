package handlers

import (
	"errors"
	"net/http"

	"complaintdesk-backend/models"
	"complaintdesk-backend/service"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler handles HTTP requests for complaints
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// statusForKind maps a service error kind to an HTTP status code
func statusForKind(kind service.ErrorKind) int {
	if kind == service.KindBadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Home handles GET / and redirects to the submission form
func (h *ComplaintHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/submit")
}

// ShowSubmitForm handles GET /submit
func (h *ComplaintHandler) ShowSubmitForm(c *gin.Context) {
	c.HTML(http.StatusOK, "submit_complaint.html", nil)
}

// StudentDashboard handles GET /dashboard
func (h *ComplaintHandler) StudentDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "student_dashboard.html", nil)
}

// AdminDashboard handles GET /admin
func (h *ComplaintHandler) AdminDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", nil)
}

// SubmitComplaint handles POST /submit
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	req := service.SubmitComplaintRequest{
		StudentName: c.PostForm("student_name"),
		Email:       c.PostForm("email"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if fileHeader != nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		defer file.Close()

		req.Attachment = &service.Attachment{
			Filename:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        file,
		}
	}

	_, err = h.complaintService.SubmitComplaint(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForKind(service.KindOf(err)), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// complaintResponse is the dashboard JSON view of a complaint
type complaintResponse struct {
	ID          int64                  `json:"id"`
	StudentName string                 `json:"student_name"`
	Email       string                 `json:"email"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"`
	FileURL     *string                `json:"file_url"`
	Status      models.ComplaintStatus `json:"status"`
	SubmittedAt string                 `json:"submitted_at"`
}

// GetComplaints handles GET /get_complaints
func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	result, err := h.complaintService.ListComplaints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Could not fetch complaints",
		})
		return
	}

	complaints := make([]complaintResponse, 0, len(result.Complaints))
	for _, complaint := range result.Complaints {
		complaints = append(complaints, complaintResponse{
			ID:          complaint.ID,
			StudentName: complaint.StudentName,
			Email:       complaint.Email,
			Title:       complaint.Title,
			Description: complaint.Description,
			Type:        complaint.Type,
			FileURL:     complaint.FileURL,
			Status:      complaint.Status,
			SubmittedAt: complaint.SubmittedAtDisplay(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": complaints,
	})
}

// AssignComplaintRequest represents the request body for assigning a complaint
type AssignComplaintRequest struct {
	ID       int64  `json:"id"`
	Assignee string `json:"assignee"`
}

// AssignComplaint handles POST /assign_complaint
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	err := h.complaintService.AssignComplaint(c.Request.Context(), service.AssignComplaintRequest{
		ID:       req.ID,
		Assignee: req.Assignee,
	})
	if err != nil {
		c.JSON(statusForKind(service.KindOf(err)), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint assigned successfully.",
	})
}

// UpdateStatusRequest represents the request body for updating a status
type UpdateStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus handles POST /update_status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	err := h.complaintService.UpdateStatus(c.Request.Context(), service.UpdateStatusRequest{
		ID:     req.ID,
		Status: req.Status,
	})
	if err != nil {
		c.JSON(statusForKind(service.KindOf(err)), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint status updated successfully.",
	})
}
