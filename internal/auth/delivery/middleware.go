package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/auth/token"
)

// Context keys under which the middleware exposes the verified identity.
// Handlers must read the caller's identity from these and never from the
// request body.
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
)

// AuthMiddleware verifies the bearer token on every request it guards and
// places the parsed claims into the request context. It performs no I/O.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user id placed in the
// context by AuthMiddleware. Zero means the middleware did not run.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
