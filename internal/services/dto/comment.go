package dto

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=512"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=512"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
