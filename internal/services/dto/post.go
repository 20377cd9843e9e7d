package dto

import "time"

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=128"`
	Content string `json:"content" validate:"required,max=2048"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=128"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=2048"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
