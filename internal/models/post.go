package models

type Post struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title   string `gorm:"size:128;not null" json:"title"`
	Content string `gorm:"size:2048;not null" json:"content"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Media    []Media   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
