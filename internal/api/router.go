// Package api serves assessments and analytics over HTTP.
package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/internal/metrics"
	"github.com/sirupsen/logrus"
)

// AdminTokenHeader carries the admin token on gated routes.
const AdminTokenHeader = "x-admin-token"

// RouterOptions configures the gin engine.
type RouterOptions struct {
	GinMode     string
	CORSOrigins []string // empty allows every origin
	Metrics     *metrics.Collector
}

// NewRouter builds the engine with recovery, request logging, CORS, and the 404 handler.
func NewRouter(opts RouterOptions) *gin.Engine {
	gin.SetMode(opts.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(opts.Metrics))
	engine.Use(CORSMiddleware(opts.CORSOrigins))
	engine.NoRoute(NoRouteHandler())
	return engine
}

// CORSMiddleware allows the listed origins, or every origin when none are listed.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", AdminTokenHeader}
	return cors.New(corsConfig)
}

// NoRouteHandler answers unknown paths with a JSON 404.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "page not found"})
	}
}

// AdminAuthMiddleware requires the admin token header when token is set.
// An empty token leaves the group open.
func AdminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got := c.GetHeader(AdminTokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			logging.Log.Warnf("ADMIN: Unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs each request and records it on the collector.
func RequestLogger(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		collector.HTTPRequest(c.Request.Context(), c.Request.Method, route, status, elapsed)

		entry := logging.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": elapsed.String(),
		})
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Debug("request served")
		}
	}
}
