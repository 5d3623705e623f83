package middleware

import (
	"time"

	"wanderlust-booking/internal/infra/observability"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels by route template so ids do not blow up cardinality.
func MetricsMiddleware(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
