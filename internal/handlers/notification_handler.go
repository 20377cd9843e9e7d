package handlers

import (
	"errors"
	"net/http"

	"caseshare_backend/internal/identity"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services"
	"caseshare_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes a plain HTTP view of the notification
// store for clients without a live connection. All realtime delivery
// goes through the websocket router instead.
type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

// handleError translates the notification service's sentinel errors
// into HTTP status codes. The realtime router does its own, stricter
// translation.
func (h *NotificationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrWrongType), errors.Is(err, identity.ErrInvalidFormat):
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid identifier"))
	case errors.Is(err, services.ErrNotAuthorized):
		apperrors.HandleError(c, apperrors.NewForbiddenError("You do not own this notification"))
	case errors.Is(err, repositories.ErrNotificationNotFound):
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
	default:
		h.HandleServiceError(c, err)
	}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.List(userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAsRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkAsRead(userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkAllAsRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllAsRead(userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	deletedID, err := h.notificationService.Delete(userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": deletedID})
}

// DeleteAll handles DELETE /notifications.
func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.DeleteAll(userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications deleted"})
}
