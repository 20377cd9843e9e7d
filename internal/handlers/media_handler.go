package handlers

import (
	"net/http"

	"caseshare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
	maxSize      int64
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService, maxSize int64) *MediaHandler {
	return &MediaHandler{BaseHandler: base, mediaService: mediaService, maxSize: maxSize}
}

// Upload handles POST /posts/:id/media with a multipart "file" field.
func (h *MediaHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > h.maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	media, err := h.mediaService.Upload(
		c.Request.Context(),
		userID,
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// ListByPost handles GET /posts/:id/media.
func (h *MediaHandler) ListByPost(c *gin.Context) {
	media, err := h.mediaService.ListByPost(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// Delete handles DELETE /media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}
