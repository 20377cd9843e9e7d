package handlers

import (
	"caseshare_backend/internal/config"
	"caseshare_backend/internal/services"
	"caseshare_backend/internal/validator"
)

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Post         *PostHandler
	Comment      *CommentHandler
	Like         *LikeHandler
	Message      *MessageHandler
	Media        *MediaHandler
	Notification *NotificationHandler
}

func NewAppHandlers(cfg *config.Config, svcs *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svcs.AuthService),
		User:         NewUserHandler(base, svcs.UserService),
		Post:         NewPostHandler(base, svcs.PostService),
		Comment:      NewCommentHandler(base, svcs.CommentService),
		Like:         NewLikeHandler(base, svcs.LikeService),
		Message:      NewMessageHandler(base, svcs.MessageService),
		Media:        NewMediaHandler(base, svcs.MediaService, cfg.Upload.MaxSize),
		Notification: NewNotificationHandler(base, svcs.NotificationService),
	}
}
