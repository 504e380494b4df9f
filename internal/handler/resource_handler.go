package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/middleware"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/response"
)

// ResourceHandler records learning-resource access events.
type ResourceHandler struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(rdb *redis.Client) *ResourceHandler {
	return &ResourceHandler{
		rdb: rdb,
		log: logger.Component("resource_handler"),
	}
}

// RecordAccess godoc
// POST /api/v1/resources/:id/access
// Queues an access event; a background worker bumps the student's counter.
func (h *ResourceHandler) RecordAccess(c *gin.Context) {
	claims := middleware.GetClaims(c)

	event := model.ResourceAccessEvent{
		StudentID:  claims.Subject,
		ResourceID: c.Param("id"),
		AccessedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.rdb.RPush(c.Request.Context(), config.WorkerKey.ResourceAccessQueue, payload).Err(); err != nil {
		h.log.Error().Err(err).Str("student_id", event.StudentID).Msg("Failed to queue resource access")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"queued": true})
}
