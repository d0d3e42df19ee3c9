package router

import (
	"net/url"
	"time"

	"github.com/bahtledger/backend/pkg/metrics"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// URLMiddleware sets the external URL of the API in the context.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

// LoggerMiddleware attaches the global logger to the request context
// so that ledger operations log with it.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(log.Logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Use the route template to keep the cardinality of the labels low
		// https://prometheus.io/docs/practices/naming/#labels
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.ObserveRequest(c.Writer.Status(), c.Request.Method, route, time.Since(start))
	}
}
