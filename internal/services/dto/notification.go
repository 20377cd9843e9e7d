package dto

// NotificationResponse is the wire form of a notification, used both by
// the HTTP surface and the realtime channel. The timestamp is an
// ISO 8601 string to keep the realtime payload transport-agnostic.
type NotificationResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}
