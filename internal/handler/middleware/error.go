package middleware

import (
	"log/slog"
	"net/http"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs the cause of every aborted request and writes the
// envelope when a handler recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		resp, cause, ok := lastPublic(c)
		if ok {
			logCause(c, resp, cause)
		}

		if c.Writer.Written() {
			return
		}
		if ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func lastPublic(c *gin.Context) (httperr.Response, error, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, e.Err, true
		}
	}
	return httperr.Response{}, nil, false
}

func logCause(c *gin.Context, resp httperr.Response, cause error) {
	attrs := []any{
		"status", resp.Status,
		"path", c.FullPath(),
		"message", resp.Error.Message,
		"error", cause.Error(),
	}
	if sid := GetSessionID(c); sid != "" {
		attrs = append(attrs, "session_id", sid)
	}

	if resp.Status >= http.StatusInternalServerError {
		attrs = append(attrs, "stack", errs.ExtractStackLines(cause, stackLines))
		slog.Error("request failed", attrs...)
		return
	}
	slog.Debug("request rejected", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
