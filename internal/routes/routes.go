package routes

import (
	"caseshare_backend/internal/handlers"
	"caseshare_backend/internal/middleware"
	"caseshare_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP and websocket endpoints.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.Handler) {
	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Public read endpoints.
	api.GET("/users", h.User.List)
	api.GET("/users/:id", h.User.Get)
	api.GET("/users/:id/posts", h.Post.ListByUser)
	api.GET("/posts", h.Post.List)
	api.GET("/posts/:id", h.Post.Get)
	api.GET("/posts/:id/comments", h.Comment.ListByPost)
	api.GET("/posts/:id/likes", h.Like.Count)
	api.GET("/posts/:id/media", h.Media.ListByPost)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.User.Me)
		protected.PATCH("/me", h.User.Update)
		protected.POST("/me/password", h.User.ChangePassword)
		protected.DELETE("/me", h.User.Delete)

		protected.POST("/posts", h.Post.Create)
		protected.PATCH("/posts/:id", h.Post.Update)
		protected.DELETE("/posts/:id", h.Post.Delete)

		protected.POST("/posts/:id/comments", h.Comment.Create)
		protected.PATCH("/comments/:id", h.Comment.Update)
		protected.DELETE("/comments/:id", h.Comment.Delete)

		protected.POST("/posts/:id/like", h.Like.Like)
		protected.DELETE("/posts/:id/like", h.Like.Unlike)

		protected.POST("/messages", h.Message.Send)
		protected.GET("/messages/:peer_id", h.Message.Conversation)

		protected.POST("/posts/:id/media", h.Media.Upload)
		protected.DELETE("/media/:id", h.Media.Delete)

		protected.GET("/notifications", h.Notification.List)
		protected.GET("/notifications/unread-count", h.Notification.UnreadCount)
		protected.POST("/notifications/read-all", h.Notification.MarkAllAsRead)
		protected.POST("/notifications/:id/read", h.Notification.MarkAsRead)
		protected.DELETE("/notifications/:id", h.Notification.Delete)
		protected.DELETE("/notifications", h.Notification.DeleteAll)
	}

	// Realtime endpoint; the room is bound to the authenticated user.
	r.GET("/ws", middleware.AuthMiddleware(), wsHandler.ServeWS)
}
