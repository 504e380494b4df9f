package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartedurural/smartedu-backend/internal/middleware"
	"github.com/smartedurural/smartedu-backend/internal/response"
	"github.com/smartedurural/smartedu-backend/internal/service"
)

// DashboardHandler handles the role dashboards.
type DashboardHandler struct {
	summaryService *service.SummaryService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(summaryService *service.SummaryService) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// Student godoc
// GET /api/v1/dashboard/student
// Returns the calling student's summary, open test count and recent results.
func (h *DashboardHandler) Student(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dashboard, err := h.summaryService.ForStudent(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dashboard": dashboard})
}

// Parent godoc
// GET /api/v1/dashboard/parent
// Returns a summary per linked child.
func (h *DashboardHandler) Parent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dashboard, err := h.summaryService.ForParent(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dashboard": dashboard})
}
