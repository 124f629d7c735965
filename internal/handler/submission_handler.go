package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classdesk/classdesk-backend/internal/response"
	"github.com/classdesk/classdesk-backend/internal/service"
	"github.com/classdesk/classdesk-backend/internal/validator"
)

// SubmissionHandler handles submission listing and creation.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// ListSubmissions godoc
// GET /api/submissions?assignmentId=
// Lists submissions newest first, optionally filtered to one assignment.
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	items, err := h.submissionService.List(c.Request.Context(), c.Query("assignmentId"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"items": items})
}

// CreateSubmissionRequest is the payload for creating a submission.
type CreateSubmissionRequest struct {
	AssignmentID string `json:"assignmentId" binding:"notblank"`
	StudentName  string `json:"studentName" binding:"notblank"`
	Response     string `json:"response" binding:"notblank"`
	ClassPin     string `json:"classPin"`
	Steps        string `json:"steps"`
	Reflection   string `json:"reflection"`
	SubmittedAt  string `json:"submittedAt"`
}

// CreateSubmission godoc
// POST /api/submissions
// Creates a new submission; the referenced assignment must exist.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if msg := validator.FirstError(err); msg != "" {
			response.FailMsg(c, http.StatusBadRequest, msg)
			return
		}
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	item, err := h.submissionService.Create(c.Request.Context(), service.CreateSubmissionInput{
		AssignmentID: req.AssignmentID,
		StudentName:  req.StudentName,
		ClassPin:     req.ClassPin,
		Response:     req.Response,
		Steps:        req.Steps,
		Reflection:   req.Reflection,
		SubmittedAt:  req.SubmittedAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrAssignmentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"id": item.ID, "item": item})
}
