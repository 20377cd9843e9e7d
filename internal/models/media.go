package models

type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindVideo    MediaKind = "video"
	MediaKindDocument MediaKind = "document"
)

// Media is a file attachment on a post. The file itself lives in the
// storage layer; Filepath is never serialized to clients.
type Media struct {
	BaseModel
	UserID   string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID   string    `gorm:"type:uuid;not null;index" json:"post_id"`
	Kind     MediaKind `gorm:"size:20;not null" json:"kind"`
	Filename string    `gorm:"size:100;not null" json:"filename"`
	Filepath string    `gorm:"size:255;not null" json:"-"`
	URL      string    `gorm:"size:255" json:"url"`
}
