package dto

import "time"

type MediaResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Kind      string    `json:"kind"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
