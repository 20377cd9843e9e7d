package models

// Message is a direct message between two users.
type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string `gorm:"size:512;not null" json:"content"`
}
