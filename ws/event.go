package ws

import "encoding/json"

// Inbound event names accepted from clients.
const (
	EventGetNotifications       = "get_notifications"
	EventMarkAsRead             = "mark_as_read"
	EventMarkAllAsRead          = "mark_all_as_read"
	EventDeleteNotification     = "delete_notification"
	EventDeleteAllNotifications = "delete_all_notifications"
	EventGetUnreadCount         = "get_unread_count"
)

// Outbound event names.
const (
	EventConnect             = "connect"
	EventDisconnect          = "disconnect"
	EventAllNotifications    = "all_notifications"
	EventReadNotification    = "read_notification"
	EventAllRead             = "all_read"
	EventNotificationDeleted = "notification_deleted"
	EventAllDeleted          = "all_deleted"
	EventUnreadCount         = "unread_count"
	EventError               = "error"
)

// Message is an inbound frame. Data is kept raw so field types can be
// checked explicitly; the realtime transport has no schema in front of it.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Event is an outbound frame.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

func errorEvent(msg string) Event {
	return Event{Event: EventError, Data: map[string]string{"error": msg}}
}
