package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/shared/server/respond"
)

const authTokenKey = "authToken"

// Auth extracts the caller's bearer token and stores it in context so
// handlers can forward it to the analytics backend. Identity is verified
// upstream; this layer only rejects requests with no credential at all.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing credentials", nil)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(authTokenKey, token)
		c.Next()
	}
}

// AuthTokenFromContext fetches the bearer token stored by the auth middleware.
func AuthTokenFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(authTokenKey)
	if token, ok := val.(string); ok {
		return token
	}
	return ""
}
