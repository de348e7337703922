package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(method, path, status, duration)
	}
}

// Timer measures one filesystem operation.
type Timer struct {
	start     time.Time
	metrics   *Metrics
	operation string
}

// NewTimer creates a new timer for operation.
func NewTimer(metrics *Metrics, operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		metrics:   metrics,
		operation: operation,
	}
}

// Stop stops the timer and records the duration with the given status.
func (t *Timer) Stop(status string) {
	t.metrics.RecordOp(t.operation, status, time.Since(t.start))
}
