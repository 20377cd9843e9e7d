package handlers

import (
	"net/http"

	"caseshare_backend/internal/services"
	"caseshare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{BaseHandler: base, commentService: commentService}
}

// ListByPost handles GET /posts/:id/comments.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.commentService.ListByPost(c.Param("id"), ParseOffset(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /posts/:id/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update handles PATCH /comments/:id.
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comments/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
