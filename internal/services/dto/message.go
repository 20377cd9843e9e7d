package dto

import "time"

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=512"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
