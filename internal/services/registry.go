package services

// ServiceContainer bundles all services for wiring in app setup.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	PostService         PostService
	CommentService      CommentService
	LikeService         LikeService
	MessageService      MessageService
	MediaService        MediaService
	NotificationService NotificationService
}
