package middleware

import (
	"strconv"
	"time"

	"github.com/belrates/currency-service/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics creates a Gin middleware that records request counts and latency.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		m.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())

		switch path {
		case "/api/v1/rates/convert":
			m.ConversionRequestsTotal.Inc()
		case "/api/v1/currencies/:id/rate", "/api/v1/rates/:id", "/api/v1/rates/by-abbreviation":
			if c.Request.Method == "GET" {
				m.RateRequestsTotal.Inc()
			}
		}
	}
}
