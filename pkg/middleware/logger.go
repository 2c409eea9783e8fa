package middleware

import (
	"strings"
	"time"

	"github.com/code-100-precent/LingCaptcha/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 探活和采集接口不记日志
var quietPaths = []string{"/metrics", "/health", "/favicon.ico"}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// LoggerMiddleware 请求日志中间件，同时累计 HTTP 请求指标
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		metrics.ObserveHTTP(c.FullPath(), c.Request.Method, status)
		if isQuiet(path) {
			return
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("request_id", GetRequestID(c)),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if status >= 500 {
			logger.Error("Request", fields...)
			return
		}
		logger.Info("Request", fields...)
	}
}
