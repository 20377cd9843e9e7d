package repositories

import (
	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	// FindConversation returns messages exchanged between two users in
	// chronological order.
	FindConversation(userID, peerID string, offset, limit int) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindConversation(userID, peerID string, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&messages).Error
	return messages, err
}
