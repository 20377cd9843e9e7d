package models

// Like links a user to a post they liked. One like per user per post.
type Like struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
}
