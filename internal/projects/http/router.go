package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
}

// RegisterAdmin attaches the authenticated content-management routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.DELETE("/:id", h.delete)
}
