package models

type User struct {
	BaseModel
	Email        string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	FirstName    string `gorm:"size:128;not null" json:"first_name"`
	LastName     string `gorm:"size:128;not null" json:"last_name"`
	Country      string `gorm:"size:128" json:"country"`
	Title        string `gorm:"size:256" json:"title"`
	Phone        string `gorm:"size:26" json:"phone"`
	Age          int    `gorm:"default:0" json:"age"`

	Posts         []Post         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments      []Comment      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Likes         []Like         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Media         []Media        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
