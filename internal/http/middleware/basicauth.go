// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the HTTP Basic authentication gate for the admin
// listing endpoint. On failure it responds 401 with a WWW-Authenticate
// challenge so browsers prompt for credentials, matching classic Basic-auth
// semantics rather than a bare error body.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// basicRealm is the realm announced in the authentication challenge.
const basicRealm = `Basic realm="Login Required"`

// CredentialVerifier checks a username/password pair, returning a non-nil
// error when the pair does not match the stored credential.
type CredentialVerifier func(ctx context.Context, username, password string) error

// BasicAuth returns a Gin middleware that gates a route behind HTTP Basic
// authentication. Missing or invalid credentials abort the request with 401
// and a WWW-Authenticate challenge header.
func BasicAuth(verify CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || verify(c.Request.Context(), username, password) != nil {
			c.Header("WWW-Authenticate", basicRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"error":      "valid credentials required",
			})
			return
		}
		c.Next()
	}
}
