// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication for the mutating catalog
// endpoints. Tokens are HS256 JWTs; verification failures are raised into
// the request-failure channel rather than written directly, so the rejection
// dispatcher renders them like every other failure.
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
)

// ctxKeyUserID is the Gin context key under which the token subject is stored.
const ctxKeyUserID = "userID"

// JWTAuth returns a middleware that verifies an HS256 bearer token signed
// with secret. On success the token subject is stored in the Gin context
// under "userID". A missing or unverifiable token raises the unauthorized
// kind; a token that verified but is past its expiry raises the
// token-expired kind so clients can distinguish "log in" from "refresh".
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			abortWith(c, apierr.Unauthorized())
			return
		}

		var claims jwt.RegisteredClaims
		parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, apierr.TokenExpired())
				return
			}
			abortWith(c, apierr.Unauthorized())
			return
		}
		if !parsed.Valid {
			abortWith(c, apierr.Unauthorized())
			return
		}

		c.Set(ctxKeyUserID, claims.Subject)
		c.Next()
	}
}

// bearerToken extracts the token from "Authorization: Bearer <JWT>".
func bearerToken(c *gin.Context) string {
	v := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		return strings.TrimSpace(v[7:])
	}
	return ""
}

// abortWith pushes the failure into the request-failure channel and stops
// the chain; ErrorDispatch renders it.
func abortWith(c *gin.Context, err *apierr.Error) {
	_ = c.Error(err)
	c.Abort()
}
