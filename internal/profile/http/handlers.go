package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/images"
	"github.com/devfolio/portfolio-backend/internal/profile/service"
)

const maxImageUpload = 8 << 20

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "content store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

func (h *Handler) setImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "image file required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable image upload"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageUpload))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable image upload"})
		return
	}

	p, err := h.svc.SetImage(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoImage), errors.Is(err, images.ErrDecode):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "image could not be decoded"})
		case errors.Is(err, images.ErrSurfaceUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "image could not be rendered"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "profile could not be saved"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}
