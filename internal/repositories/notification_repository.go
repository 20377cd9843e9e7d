package repositories

import (
	"errors"

	"caseshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository is the persistence seam for notifications.
// Ownership checks happen in the service layer; the repository only
// stores and retrieves records.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	// FindByOwner returns the owner's notifications in creation order,
	// optionally restricted to unread ones.
	FindByOwner(ownerID string, unreadOnly bool) ([]models.Notification, error)
	Update(notification *models.Notification) error
	Delete(notification *models.Notification) error
	CountUnread(ownerID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByOwner(ownerID string, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := r.db.Where("owner_id = ?", ownerID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	err := query.Order("created_at ASC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepository) Delete(notification *models.Notification) error {
	return r.db.Delete(notification).Error
}

func (r *notificationRepository) CountUnread(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("owner_id = ? AND read = ?", ownerID, false).
		Count(&count).Error
	return count, err
}
