package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classdesk/classdesk-backend/internal/response"
	"github.com/classdesk/classdesk-backend/internal/service"
	"github.com/classdesk/classdesk-backend/internal/validator"
)

// AssignmentHandler handles assignment listing and creation.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// ListAssignments godoc
// GET /api/assignments
// Lists all assignments, newest first.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	items, err := h.assignmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"items": items})
}

// CreateAssignmentRequest is the payload for creating an assignment.
type CreateAssignmentRequest struct {
	Title     string `json:"title" binding:"notblank"`
	Prompt    string `json:"prompt" binding:"notblank"`
	GradeBand string `json:"gradeBand"`
	ClassPin  string `json:"classPin"`
	CreatedAt string `json:"createdAt"`
}

// CreateAssignment godoc
// POST /api/assignments
// Creates a new assignment and appends it to the assignments index.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if msg := validator.FirstError(err); msg != "" {
			response.FailMsg(c, http.StatusBadRequest, msg)
			return
		}
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	item, err := h.assignmentService.Create(c.Request.Context(), service.CreateAssignmentInput{
		Title:     req.Title,
		Prompt:    req.Prompt,
		GradeBand: req.GradeBand,
		ClassPin:  req.ClassPin,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"id": item.ID, "item": item})
}
