// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints. Success
// responses are written directly as the uniform envelope; failures are never
// written here — handlers raise an API failure kind into the request-failure
// channel (gin's per-request error list) and the dispatch middleware renders
// the terminal response. That keeps error-to-response translation in exactly
// one place.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
)

// respond writes a success envelope with the given HTTP status.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, apierr.Success(message, data))
}

// raise pushes a failure into the request-failure channel and stops the
// handler chain. The dispatch middleware consumes it after the chain
// unwinds; nothing is written to the response here.
func raise(c *gin.Context, err *apierr.Error) {
	_ = c.Error(err)
	c.Abort()
}

// Raise is the exported variant of raise. The router's fallback handlers
// (no route, no method) use it to feed framework-native signals into the
// same dispatch pipeline as domain failures.
func Raise(c *gin.Context, err *apierr.Error) { raise(c, err) }
