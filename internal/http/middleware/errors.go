// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file installs the rejection-dispatch stage: the single point where
// failures raised anywhere in the request pipeline (handlers, auth, the
// router's no-route/no-method fallbacks, panic recovery) become the terminal
// HTTP response. Handlers never write error responses themselves — they push
// a failure kind into gin's per-request error list and this middleware hands
// it to the dispatcher once the chain unwinds.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
)

// ErrorDispatch returns the middleware that renders raised failures.
//
// It must be installed before (outside of) Recovery so that panics converted
// into failures are still dispatched. Within a request, rendering happens at
// most once: if a handler already wrote a response, collected errors are
// logged by the access logger but not rendered again.
func ErrorDispatch(d *apierr.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, body := d.Dispatch(c.Errors[0].Err)
		// Failures must never be cached, even when an upstream stage marked
		// the request cacheable.
		c.Writer.Header().Set("Cache-Control", "no-store")
		c.JSON(status, body)
	}
}
