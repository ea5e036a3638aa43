package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

const (
	// CtxIdentity is the gin context key holding the authorized admin
	// identity. Set by the AdminOnly middleware.
	CtxIdentity = "admin_identity"
)

// CurrentIdentity extracts the authorized identity from the Gin context.
// It returns nil on routes outside the admin group.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*domain.Identity)
	return id
}
