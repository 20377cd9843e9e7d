package handlers

import (
	"net/http"

	"caseshare_backend/internal/services"
	"caseshare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

// Send handles POST /messages.
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// Conversation handles GET /messages/:peer_id.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	messages, err := h.messageService.Conversation(userID, c.Param("peer_id"), ParseOffset(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
