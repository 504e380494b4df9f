package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripRequestID(t *testing.T, inbound string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(requestIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec.Header().Get(requestIDHeader)
}

func TestRequestIDEchoesWellFormedHeader(t *testing.T) {
	id := uuid.NewString()
	assert.Equal(t, id, roundTripRequestID(t, id))
}

func TestRequestIDReplacesMalformedHeader(t *testing.T) {
	got := roundTripRequestID(t, "not-a-uuid\"}{")
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid\"}{", got)
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	got := roundTripRequestID(t, "")
	_, err := uuid.Parse(got)
	require.NoError(t, err)
}
