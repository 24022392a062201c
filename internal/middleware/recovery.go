package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/CarBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 with the usual error body.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			metrics.HTTPPanics.Inc()
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(CtxRequestID)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.String("panic", fmt.Sprint(rec)),
				logger.String("stack", string(debug.Stack())),
			)
			c.Set(CtxError, fmt.Sprint(rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"success": false,
				"error":   "internal server error",
			})
		}()

		c.Next()
	}
}
