package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/code-100-precent/LingCaptcha/pkg/metrics"
	"github.com/code-100-precent/LingCaptcha/pkg/utils/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware recovers from panics, logs the error and counts it per route.
// Panics unwind past LoggerMiddleware, so the 500 is also recorded in the request counter here.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				route := c.FullPath()
				metrics.ObservePanic(route)
				metrics.ObserveHTTP(route, c.Request.Method, http.StatusInternalServerError)

				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("route", route),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("request_id", GetRequestID(c)),
					zap.String("stack", string(debug.Stack())),
				)

				// panic 内容不返回给客户端
				response.Result(c, http.StatusInternalServerError, response.CodeError, "internal server error", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
