package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestGetClientIPForwardedFor(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
	assert.Equal(t, "203.0.113.7", getClientIP(c), "first hop in the chain wins")

	c = testContext(t)
	c.Request.Header.Set("X-Forwarded-For", " 203.0.113.9 ")
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}

func TestGetClientIPRealIP(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getClientIP(c))
}

func TestGetClientIPRemoteAddr(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", getClientIP(c), "port stripped from RemoteAddr")

	c = testContext(t)
	c.Request.RemoteAddr = "192.0.2.11"
	assert.Equal(t, "192.0.2.11", getClientIP(c))
}
