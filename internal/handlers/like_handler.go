package handlers

import (
	"net/http"

	"caseshare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	*BaseHandler
	likeService services.LikeService
}

func NewLikeHandler(base *BaseHandler, likeService services.LikeService) *LikeHandler {
	return &LikeHandler{BaseHandler: base, likeService: likeService}
}

// Like handles POST /posts/:id/like.
func (h *LikeHandler) Like(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.likeService.Like(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "liked"})
}

// Unlike handles DELETE /posts/:id/like.
func (h *LikeHandler) Unlike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.likeService.Unlike(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unliked"})
}

// Count handles GET /posts/:id/likes.
func (h *LikeHandler) Count(c *gin.Context) {
	count, err := h.likeService.Count(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
