package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shareit/internal/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestID makes sure every request carries an id, echoing it back to the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, id)
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one structured line per request and recovers from panics.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				entry(log, c, start).WithField("stack", string(debug.Stack())).WithError(err).Error("panic")

				response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error")
				c.Abort()
				return
			}

			e := entry(log, c, start)
			if len(c.Errors) > 0 {
				for _, err := range c.Errors {
					e.WithError(err.Err).Error("request_error")
				}
				return
			}
			if c.Writer.Status() >= http.StatusInternalServerError {
				e.Error("request")
				return
			}
			e.Info("request")
		}()

		c.Next()
	}
}

func entry(log logrus.FieldLogger, c *gin.Context, start time.Time) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"status":     c.Writer.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"client_ip":  c.ClientIP(),
		"user_id":    UserID(c),
		"request_id": c.GetHeader(RequestIDHeader),
		"latency":    time.Since(start).String(),
	})
}
