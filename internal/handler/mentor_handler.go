package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/middleware"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/response"
	"github.com/smartedurural/smartedu-backend/internal/service"
	"github.com/smartedurural/smartedu-backend/internal/validator"
)

// MentorHandler handles the virtual mentor chat, over REST and WebSocket.
type MentorHandler struct {
	mentorService *service.MentorService
	upgrader      websocket.Upgrader
	log           zerolog.Logger
}

// NewMentorHandler creates a new MentorHandler.
func NewMentorHandler(mentorService *service.MentorService, allowedOrigins []string) *MentorHandler {
	return &MentorHandler{
		mentorService: mentorService,
		upgrader:      buildUpgrader(allowedOrigins),
		log:           logger.Component("mentor_handler"),
	}
}

func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}

// Ask godoc
// POST /api/v1/mentor/ask
// Answers a single question. Always succeeds; the template fallback
// guarantees a reply even when web lookups fail.
func (h *MentorHandler) Ask(c *gin.Context) {
	var req model.MentorAskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reply := h.mentorService.Ask(c.Request.Context(), req.Question, req.Language)
	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// Chat godoc
// GET /ws/v1/mentor?token=...
// Upgrades to a WebSocket session. Each inbound question frame gets one
// reply frame back on the same connection.
func (h *MentorHandler) Chat(c *gin.Context) {
	claims := middleware.GetClaims(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.log.Info().Str("user_id", claims.Subject).Msg("Mentor session opened")

	for {
		var req model.MentorAskRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Str("user_id", claims.Subject).Msg("Mentor session error")
			}
			break
		}

		reply := h.mentorService.Ask(c.Request.Context(), req.Question, req.Language)
		if err := conn.WriteJSON(reply); err != nil {
			h.log.Warn().Err(err).Str("user_id", claims.Subject).Msg("Failed to write mentor reply")
			break
		}
	}

	h.log.Info().Str("user_id", claims.Subject).Msg("Mentor session closed")
}
