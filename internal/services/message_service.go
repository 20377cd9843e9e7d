package services

import (
	"errors"
	"fmt"

	"caseshare_backend/internal/logger"
	"caseshare_backend/internal/models"
	"caseshare_backend/internal/repositories"
	"caseshare_backend/internal/services/dto"
	"caseshare_backend/pkg/apperrors"
)

type MessageService interface {
	Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	Conversation(userID, peerID string, offset int) ([]*dto.MessageResponse, error)
}

type messageService struct {
	messageRepo   repositories.MessageRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) MessageService {
	return &messageService{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *messageService) Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrInvalidOperation("message", "Cannot message yourself")
	}

	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyReceiver(message)
	return buildMessageResponse(message), nil
}

func (s *messageService) Conversation(userID, peerID string, offset int) ([]*dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindConversation(userID, peerID, offset, defaultPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, buildMessageResponse(&messages[i]))
	}
	return responses, nil
}

func (s *messageService) notifyReceiver(message *models.Message) {
	text := "You have a new message"
	if sender, err := s.userRepo.FindByID(message.SenderID); err == nil {
		text = fmt.Sprintf("New message from %s %s", sender.FirstName, sender.LastName)
	}

	if _, err := s.notifications.Create(message.ReceiverID, text, "/messages/"+message.SenderID); err != nil {
		logger.Warn("failed to notify message receiver",
			"receiver_id", message.ReceiverID,
			"error", err.Error(),
		)
	}
}

func buildMessageResponse(m *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
