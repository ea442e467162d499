package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loginAttempt(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":51234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestStrictRateLimiterIsPerAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", NewStrictRateLimiter(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, loginAttempt(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, loginAttempt(r, "10.0.0.1"))

	// Un altro indirizzo non deve pagare i tentativi del primo.
	assert.Equal(t, http.StatusOK, loginAttempt(r, "10.0.0.2"))
}
