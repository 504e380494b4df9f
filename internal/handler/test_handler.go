package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartedurural/smartedu-backend/internal/middleware"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/response"
	"github.com/smartedurural/smartedu-backend/internal/service"
	"github.com/smartedurural/smartedu-backend/internal/validator"
)

// TestHandler handles the student-facing test catalog and attempt endpoints.
type TestHandler struct {
	testService    *service.TestService
	summaryService *service.SummaryService
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(testService *service.TestService, summaryService *service.SummaryService) *TestHandler {
	return &TestHandler{testService: testService, summaryService: summaryService}
}

// List godoc
// GET /api/v1/tests?subject=science
// Returns the catalog, newest first, optionally filtered by subject slug.
func (h *TestHandler) List(c *gin.Context) {
	subject := c.Query("subject")
	tests := h.testService.ListTests(subject)
	response.Success(c, http.StatusOK, gin.H{"tests": tests})
}

// Get godoc
// GET /api/v1/tests/:id
func (h *TestHandler) Get(c *gin.Context) {
	test, err := h.testService.GetTest(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrTestNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"test": test})
}

// Subjects godoc
// GET /api/v1/subjects
// Returns the subject filter options derived from the catalog.
func (h *TestHandler) Subjects(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"subjects": h.testService.Subjects()})
}

// Start godoc
// POST /api/v1/tests/:id/start
// Dry-run of the attempt gate. Nothing is recorded either way.
func (h *TestHandler) Start(c *gin.Context) {
	claims := middleware.GetClaims(c)
	result := h.testService.StartAttempt(c.Param("id"), claims.Subject)

	switch result.Reason {
	case model.StartReasonNotFound:
		response.Fail(c, http.StatusNotFound, response.ErrTestNotFound)
	case model.StartReasonMaxAttempts:
		response.Fail(c, http.StatusConflict, response.ErrMaxAttemptsReached)
	default:
		response.Success(c, http.StatusOK, gin.H{"start": result})
	}
}

// Submit godoc
// POST /api/v1/tests/:id/submit
// Grades the attempt, appends it to the ledger and returns both views.
func (h *TestHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.SubmitTestRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := model.User{ID: claims.Subject, Name: claims.Name, Role: claims.Role}
	submission, completed, err := h.testService.Submit(c.Request.Context(), c.Param("id"), student, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrTestNotFound)
		case errors.Is(err, service.ErrMaxAttemptsReached):
			response.Fail(c, http.StatusConflict, response.ErrMaxAttemptsReached)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"submission": submission,
		"result":     completed,
	})
}

// Completed godoc
// GET /api/v1/tests/completed
// Returns the calling student's completed-test rows, newest first.
func (h *TestHandler) Completed(c *gin.Context) {
	claims := middleware.GetClaims(c)
	response.Success(c, http.StatusOK, gin.H{
		"completed": h.testService.CompletedFor(claims.Subject),
	})
}

// Submissions godoc
// GET /api/v1/tests/submissions
// Returns the calling student's graded submissions with per-answer detail.
func (h *TestHandler) Submissions(c *gin.Context) {
	claims := middleware.GetClaims(c)
	response.Success(c, http.StatusOK, gin.H{
		"submissions": h.testService.SubmissionsFor(claims.Subject),
	})
}

// Leaderboard godoc
// GET /api/v1/tests/:id/leaderboard
// Returns the per-test leaderboard, best score first.
func (h *TestHandler) Leaderboard(c *gin.Context) {
	entries, err := h.testService.Leaderboard(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrTestNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leaderboard": entries})
}

// ClassLeaderboard godoc
// GET /api/v1/leaderboard/class
// Returns every known student ranked by average score. Students with no
// submissions appear at the tail with a null rank.
func (h *TestHandler) ClassLeaderboard(c *gin.Context) {
	board, err := h.summaryService.ClassLeaderboard(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leaderboard": board})
}
