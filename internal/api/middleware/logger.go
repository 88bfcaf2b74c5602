package middleware

import (
	"fmt"
	"time"

	"org-demo-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger writes one access log line per request once it has been answered
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		url := c.Request.URL.String()

		logger.FromGin(c).WithFields(logrus.Fields{
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
		}).Info(fmt.Sprintf("%s %s -> %d (%dms)", c.Request.Method, url, status, latency.Milliseconds()))
	}
}
