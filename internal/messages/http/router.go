package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the contact-form submission route. The caller
// is expected to wrap the group with a rate limiter.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

// RegisterAdmin attaches the dashboard inbox routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.DELETE("/:id", h.delete)
}
