package models

// Notification is owned by exactly one user and visible only to them.
// The owner and creation time are immutable; the read flag is the only
// mutable field.
type Notification struct {
	BaseModel
	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id"`
	Message string `gorm:"size:255;not null" json:"message"`
	Link    string `gorm:"size:255" json:"link"`
	Read    bool   `gorm:"default:false" json:"read"`
}

// MarkRead flips the read flag. Idempotent: marking an already-read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.Read = true
}
