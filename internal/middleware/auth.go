package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/auth"
	"floreria-be/internal/user"
	"floreria-be/internal/utils"
)

// Authenticate resolves the session token when present and attaches the user
// identity to the request context. An invalid or missing token leaves the
// request anonymous; route guards decide whether that is acceptable.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractAccessToken(c.Request)
		if token == "" {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(token)
		if err != nil {
			c.Next()
			return
		}

		ctx := utils.SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.GetUserIDFromContext(c.Request.Context())
		if !ok || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose user is not an admin. Must run after
// Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.GetUserIDFromContext(c.Request.Context())
		if !ok || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !utils.IsAdmin(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
