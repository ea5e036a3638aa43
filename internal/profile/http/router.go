package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the public profile read.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.get)
}

// RegisterAdmin attaches the profile image upload.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.PUT("/image", h.setImage)
}
