package middleware

import (
	"time"

	"sysconf-keeper/services"

	"github.com/gin-gonic/gin"
)

/**
 * HTTP request metrics middleware
 * @description
 * - Counts requests per route
 * - Records request handling time
 * - Counts requests answered with status >= 400 separately
 */
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		services.IncrementRequestCount(route)
		services.RecordRequestDuration(route, duration)

		if statusCode >= 400 {
			services.IncrementErrorCount(route)
		}
	}
}
