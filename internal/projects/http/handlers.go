package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/images"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
	"github.com/devfolio/portfolio-backend/internal/store"
)

// maxImageUpload bounds the multipart image read (8 MB is far above any
// sensible portfolio screenshot).
const maxImageUpload = 8 << 20

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "content store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) create(c *gin.Context) {
	in := service.CreateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
		RepoURL:     c.PostForm("repo_url"),
		LiveURL:     c.PostForm("live_url"),
	}

	if file, err := c.FormFile("image"); err == nil {
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
		in.ImageData = data
	}

	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		status, msg := createErrorStatus(err)
		c.JSON(status, gin.H{"ok": false, "error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func createErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, images.ErrDecode):
		return http.StatusBadRequest, "image could not be decoded"
	case errors.Is(err, images.ErrSurfaceUnavailable):
		return http.StatusUnprocessableEntity, "image could not be rendered"
	case errors.Is(err, store.ErrWrite), errors.Is(err, store.ErrUnavailable):
		return http.StatusBadGateway, "content store unavailable"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
