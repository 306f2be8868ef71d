package middleware

import (
	"time"

	"report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Hook is cross-cutting behaviour attached to a route when it is registered.
// Before runs ahead of the handler and may stop the request by returning an error;
// After runs once the handler has written its response.
type Hook struct {
	Name   string
	Before func(c *gin.Context) error
	After  func(c *gin.Context)
}

// Compose wraps handler with hooks. Before hooks run in order, After hooks in reverse order.
// When a Before hook fails, the handler and the remaining hooks are skipped and the error is
// attached to the context.
func Compose(handler gin.HandlerFunc, hooks ...Hook) gin.HandlerFunc {
	return func(c *gin.Context) {
		ran := 0
		for _, h := range hooks {
			if h.Before != nil {
				if err := h.Before(c); err != nil {
					_ = c.Error(err)
					c.Abort()
					runAfter(c, hooks[:ran])
					return
				}
			}
			ran++
		}

		handler(c)

		runAfter(c, hooks)
	}
}

func runAfter(c *gin.Context, hooks []Hook) {
	for i := len(hooks) - 1; i >= 0; i-- {
		if hooks[i].After != nil {
			hooks[i].After(c)
		}
	}
}

const startedAtKey = "hook.started_at"

// LogRequest logs each request with its status and duration.
func LogRequest(l log.Logger) Hook {
	return Hook{
		Name: "log_request",
		Before: func(c *gin.Context) error {
			c.Set(startedAtKey, time.Now())
			return nil
		},
		After: func(c *gin.Context) {
			started, _ := c.Get(startedAtKey)
			start, _ := started.(time.Time)
			l.Infof(c.Request.Context(), "%s %s -> %d in %s",
				c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
		},
	}
}

// NoStore marks the response as uncacheable by clients and proxies.
func NoStore() Hook {
	return Hook{
		Name: "no_store",
		Before: func(c *gin.Context) error {
			c.Header("Cache-Control", "no-store")
			return nil
		},
	}
}
