package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// Workers lets at most n requests run their handlers at the same time.
// The rest wait in arrival order until a slot frees up or the client goes away.
func Workers(n int) gin.HandlerFunc {
	if n < 1 {
		n = 1
	}
	sem := semaphore.NewWeighted(int64(n))

	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.Abort()
			return
		}
		defer sem.Release(1)

		workersBusy.Inc()
		defer workersBusy.Dec()

		c.Next()
	}
}
