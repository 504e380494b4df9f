package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/response"
	"github.com/smartedurural/smartedu-backend/internal/service"
	"github.com/smartedurural/smartedu-backend/internal/validator"
)

// TeacherHandler handles the teacher portal endpoints.
type TeacherHandler struct {
	testService    *service.TestService
	summaryService *service.SummaryService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(testService *service.TestService, summaryService *service.SummaryService) *TeacherHandler {
	return &TeacherHandler{testService: testService, summaryService: summaryService}
}

// PublishTest godoc
// POST /api/v1/teacher/tests
// Normalizes the draft and upserts it into the catalog.
func (h *TeacherHandler) PublishTest(c *gin.Context) {
	var req model.PublishTestRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	test, err := h.testService.Publish(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"test": test})
}

// Students godoc
// GET /api/v1/teacher/students
// Returns the class roster with per-student performance summaries.
func (h *TeacherHandler) Students(c *gin.Context) {
	roster, err := h.summaryService.Roster(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": roster})
}

// Submissions godoc
// GET /api/v1/teacher/submissions
// Returns every submission in the ledger for review.
func (h *TeacherHandler) Submissions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"submissions": h.testService.AllSubmissions(),
	})
}

// OverrideScore godoc
// POST /api/v1/teacher/submissions/:id/score
// Applies a manual score to a submission and marks it reviewed.
func (h *TeacherHandler) OverrideScore(c *gin.Context) {
	var req model.OverrideScoreRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	submission, err := h.testService.OverrideScore(c.Request.Context(), c.Param("id"), req.Score)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrSubmissionNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// Reset godoc
// POST /api/v1/teacher/reset
// Restores the seeded demo snapshot, discarding every published test
// and submission.
func (h *TeacherHandler) Reset(c *gin.Context) {
	if err := h.testService.ResetAll(c.Request.Context()); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset": true})
}
