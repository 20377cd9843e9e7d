package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"caseshare_backend/internal/identity"
	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
)

// EventNewNotification is pushed out-of-band to the owner's room when a
// notification is created by a producer (like, comment, direct message).
const EventNewNotification = "new_notification"

// MaxNotificationMessageLen bounds the free-text body, counted in runes.
const MaxNotificationMessageLen = 255

var (
	// ErrNotAuthorized means the notification exists but belongs to
	// someone else. Deliberately surfaced to clients with the same
	// message as a malformed identifier so existence never leaks.
	ErrNotAuthorized = errors.New("notification does not belong to the requester")

	ErrInvalidMessage = errors.New("notification message is empty or too long")
)

// Emitter pushes a named event to every live connection in a room.
// Implemented by ws.Hub; substituted with a fake in tests.
type Emitter interface {
	Emit(event string, payload any, room string)
}

// NotificationService orchestrates identifier validation, ownership
// checks and store access for notifications. It is the only component
// allowed to mutate or delete a notification.
type NotificationService interface {
	// Create persists a notification and pushes new_notification to the
	// owner's room.
	Create(ownerID, message, link string) (*dto.NotificationResponse, error)
	// List returns all of the owner's notifications in creation order.
	List(ownerID string) ([]*dto.NotificationResponse, error)
	// MarkAsRead flips the read flag. Idempotent.
	MarkAsRead(ownerID, notificationID string) (*dto.NotificationResponse, error)
	// MarkAllAsRead marks every notification of the owner read, one
	// record at a time. No cross-record atomicity.
	MarkAllAsRead(ownerID string) error
	// Delete removes one notification and returns its id.
	Delete(ownerID, notificationID string) (string, error)
	// DeleteAll removes every notification of the owner, one record at
	// a time. No cross-record atomicity.
	DeleteAll(ownerID string) error
	// UnreadCount returns the number of unread notifications.
	UnreadCount(ownerID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	emitter          Emitter
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, emitter Emitter) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		emitter:          emitter,
	}
}

func (s *notificationService) Create(ownerID, message, link string) (*dto.NotificationResponse, error) {
	if err := identity.Validate(ownerID); err != nil {
		return nil, err
	}
	if message == "" || utf8.RuneCountInString(message) > MaxNotificationMessageLen {
		return nil, ErrInvalidMessage
	}

	notification := &models.Notification{
		OwnerID: ownerID,
		Message: message,
		Link:    link,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	response := buildNotificationResponse(notification)
	if s.emitter != nil {
		s.emitter.Emit(EventNewNotification, response, ownerID)
	}
	return response, nil
}

func (s *notificationService) List(ownerID string) ([]*dto.NotificationResponse, error) {
	if err := identity.Validate(ownerID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByOwner(ownerID, false)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *notificationService) MarkAsRead(ownerID, notificationID string) (*dto.NotificationResponse, error) {
	notification, err := s.fetchOwned(ownerID, notificationID)
	if err != nil {
		return nil, err
	}

	notification.MarkRead()
	if err := s.notificationRepo.Update(notification); err != nil {
		return nil, err
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(ownerID string) error {
	if err := identity.Validate(ownerID); err != nil {
		return err
	}

	notifications, err := s.notificationRepo.FindByOwner(ownerID, true)
	if err != nil {
		return err
	}

	// Per-record updates; concurrent callers race at the record level
	// with last-write-wins semantics.
	for i := range notifications {
		notifications[i].MarkRead()
		if err := s.notificationRepo.Update(&notifications[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationService) Delete(ownerID, notificationID string) (string, error) {
	notification, err := s.fetchOwned(ownerID, notificationID)
	if err != nil {
		return "", err
	}

	if err := s.notificationRepo.Delete(notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

func (s *notificationService) DeleteAll(ownerID string) error {
	if err := identity.Validate(ownerID); err != nil {
		return err
	}

	notifications, err := s.notificationRepo.FindByOwner(ownerID, false)
	if err != nil {
		return err
	}

	for i := range notifications {
		if err := s.notificationRepo.Delete(&notifications[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationService) UnreadCount(ownerID string) (int64, error) {
	if err := identity.Validate(ownerID); err != nil {
		return 0, err
	}
	return s.notificationRepo.CountUnread(ownerID)
}

// fetchOwned validates both identifiers, loads the notification and
// enforces ownership. Not-found and owner-mismatch are logged with
// distinct reasons; the transport boundary folds them into its uniform
// outward messages.
func (s *notificationService) fetchOwned(ownerID, notificationID string) (*models.Notification, error) {
	if err := identity.Validate(ownerID); err != nil {
		return nil, err
	}
	if err := identity.Validate(notificationID); err != nil {
		return nil, err
	}

	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			logger.Warn("notification lookup miss",
				"owner_id", ownerID,
				"notification_id", notificationID,
			)
		}
		return nil, err
	}

	if notification.OwnerID != ownerID {
		logger.Warn("notification ownership mismatch",
			"requester_id", ownerID,
			"notification_id", notificationID,
		)
		return nil, ErrNotAuthorized
	}
	return notification, nil
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Message:   n.Message,
		Link:      n.Link,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		Read:      n.Read,
	}
}
