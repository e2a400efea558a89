package delivery

import (
	"net/http"

	"social-backend/internal/message/domain"
	messagedto "social-backend/internal/message/dto"
	"social-backend/internal/message/usecase"
	"social-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
	}
}

// Send stores a direct message
// POST /messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req messagedto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.messageUsecase.Send(c.Request.Context(), req.Sender, req.Receiver, req.Content); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// Conversation returns messages between two users, oldest first
// GET /messages/:sender/:receiver
func (h *MessageHandler) Conversation(c *gin.Context) {
	messages, err := h.messageUsecase.Conversation(c.Request.Context(), c.Param("sender"), c.Param("receiver"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	if messages == nil {
		messages = []*domain.Message{}
	}
	c.JSON(http.StatusOK, messages)
}
