package ws

import (
	"encoding/json"
	"errors"

	"caseshare_backend/internal/identity"
	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services"
)

// Wire-visible failure messages. Malformed identifiers and ownership
// mismatches share one message so existence of foreign records never
// leaks; everything else is reported uniformly as an internal failure.
const (
	msgInvalidRequest = "invalid request"
	msgInvalidUserID  = "invalid user ID"
	msgInternal       = "Something went wrong"
)

// Router maps inbound realtime events to notification service calls and
// turns the results into outbound events. Every branch ends in an emit;
// no fault propagates to the transport. The router never touches the
// store directly.
type Router struct {
	notifications services.NotificationService
	channel       services.Emitter
}

func NewRouter(notifications services.NotificationService, channel services.Emitter) *Router {
	return &Router{
		notifications: notifications,
		channel:       channel,
	}
}

// Handle dispatches one inbound frame. Responses addressed to a
// well-formed owner identifier go to that room; everything else goes
// only to the requesting connection via reply.
func (r *Router) Handle(msg Message, reply func(Event) bool) {
	data, ok := decodePayload(msg.Data)
	if !ok {
		reply(errorEvent(msgInvalidRequest))
		return
	}

	switch msg.Event {
	case EventGetNotifications:
		r.getNotifications(data, reply)
	case EventMarkAsRead:
		r.markAsRead(data, reply)
	case EventMarkAllAsRead:
		r.markAllAsRead(data, reply)
	case EventDeleteNotification:
		r.deleteNotification(data, reply)
	case EventDeleteAllNotifications:
		r.deleteAllNotifications(data, reply)
	case EventGetUnreadCount:
		r.getUnreadCount(data, reply)
	default:
		reply(errorEvent(msgInvalidRequest))
	}
}

func (r *Router) getNotifications(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}

	notifications, err := r.notifications.List(userID)
	if err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventAllNotifications, notifications, userID)
}

func (r *Router) markAsRead(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}
	notificationID, ok := r.requireID(data, "notification_id", reply)
	if !ok {
		return
	}

	notification, err := r.notifications.MarkAsRead(userID, notificationID)
	if err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventReadNotification, notification, userID)
}

func (r *Router) markAllAsRead(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}

	if err := r.notifications.MarkAllAsRead(userID); err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventAllRead, nil, userID)
}

func (r *Router) deleteNotification(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}
	notificationID, ok := r.requireID(data, "notification_id", reply)
	if !ok {
		return
	}

	deletedID, err := r.notifications.Delete(userID, notificationID)
	if err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventNotificationDeleted, deletedID, userID)
}

func (r *Router) deleteAllNotifications(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}

	if err := r.notifications.DeleteAll(userID); err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventAllDeleted, nil, userID)
}

func (r *Router) getUnreadCount(data map[string]json.RawMessage, reply func(Event) bool) {
	userID, ok := r.requireID(data, "user_id", reply)
	if !ok {
		return
	}

	count, err := r.notifications.UnreadCount(userID)
	if err != nil {
		r.fail(userID, err, reply)
		return
	}
	r.channel.Emit(EventUnreadCount, count, userID)
}

// requireID extracts and validates an identifier field. A missing field
// is an invalid request; a present but malformed value is rejected with
// the uniform identifier message. The service is never called in either
// case.
func (r *Router) requireID(data map[string]json.RawMessage, field string, reply func(Event) bool) (string, bool) {
	raw, ok := data[field]
	if !ok {
		reply(errorEvent(msgInvalidRequest))
		return "", false
	}

	id, err := identity.Parse(raw)
	if err != nil {
		reply(errorEvent(msgInvalidUserID))
		return "", false
	}
	return id, true
}

// fail reports a service failure to the room (the owner id is known to
// be well-formed here). Not-found and infrastructure faults share the
// generic outward message but are logged with distinct reasons.
func (r *Router) fail(room string, err error, reply func(Event) bool) {
	switch {
	case errors.Is(err, identity.ErrWrongType),
		errors.Is(err, identity.ErrInvalidFormat),
		errors.Is(err, services.ErrNotAuthorized):
		r.channel.Emit(EventError, map[string]string{"error": msgInvalidUserID}, room)
	case errors.Is(err, repositories.ErrNotificationNotFound):
		r.channel.Emit(EventError, map[string]string{"error": msgInternal}, room)
	default:
		logger.Error("notification operation failed", "room", room, "error", err.Error())
		r.channel.Emit(EventError, map[string]string{"error": msgInternal}, room)
	}
}

// decodePayload parses the data field into raw members. A frame without
// a JSON object payload cannot satisfy any dispatch entry.
func decodePayload(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	return data, true
}
