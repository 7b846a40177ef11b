package api

import (
	"net/http"
	"strconv"
	"time"

	"bmb-admin/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session keys
const (
	sessionKeyLoggedIn  = "admin_logged_in"
	sessionKeyUsername  = "admin_username"
	sessionKeyLoginTime = "login_time"
)

const requestIDHeader = "X-Request-ID"

// requireAdmin gates every admin route behind an active session. Requests
// without one are bounced to the login page with a flash message.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		loggedIn, ok := sess.Get(sessionKeyLoggedIn).(bool)
		if !ok || !loggedIn {
			sess.AddFlash("Please login as admin to access this page", "error")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// adminUsername returns the logged-in admin's username, or "" outside a
// session.
func adminUsername(c *gin.Context) string {
	sess := sessions.Default(c)
	if username, ok := sess.Get(sessionKeyUsername).(string); ok {
		return username
	}
	return ""
}

// requestIDMiddleware tags every request with an id for log correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
