package middleware

import (
	"strconv"
	"time"

	"taxhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics records per-request latency. The route template is used
// rather than the raw path so path parameters do not explode cardinality.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPDuration(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
