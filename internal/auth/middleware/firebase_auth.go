package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

// AdminOnly validates the Firebase ID token from the Authorization header
// and rejects every account except the configured admin.
func AdminOnly(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			return
		}

		identity, err := gate.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrAccessDenied) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}

		c.Set(auth.CtxIdentity, identity)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
