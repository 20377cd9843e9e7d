package models

type Comment struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID  string `gorm:"type:uuid;not null;index" json:"post_id"`
	Content string `gorm:"size:512;not null" json:"content"`
}
