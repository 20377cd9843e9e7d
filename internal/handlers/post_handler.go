package handlers

import (
	"net/http"

	"caseshare_backend/internal/services"
	"caseshare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{BaseHandler: base, postService: postService}
}

// List handles GET /posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(ParseOffset(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByUser handles GET /users/:id/posts.
func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.postService.ListByUser(c.Param("id"), ParseOffset(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PATCH /posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
