package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skylar-games/case-opener/internal/infrastructure/monitoring"
)

// Metrics middleware counts requests by method, route and status. The
// registered route pattern is used so path parameters do not explode the
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		monitoring.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
