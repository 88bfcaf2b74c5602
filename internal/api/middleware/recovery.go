package middleware

import (
	"fmt"

	"org-demo-backend/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panicking handler into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		c.Abort()
		handlers.WriteError(c, fmt.Errorf("panic: %v", recovered))
	})
}
