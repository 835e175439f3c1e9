package delivery

import (
	"errors"
	"net/http"

	"linkreach-backend/internal/message/usecase"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// List returns messages for a conversation or a prospect.
// GET /api/messages?conversation_id=... | ?prospect_id=...
func (h *MessageHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	if conversationID := c.Query("conversation_id"); conversationID != "" {
		messages, err := h.messageUsecase.ListByConversation(userID, conversationID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages, "total": len(messages)})
		return
	}

	prospectID := c.Query("prospect_id")
	if prospectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "conversation_id or prospect_id is required"})
		return
	}

	messages, err := h.messageUsecase.ListByProspect(userID, prospectID)
	if err != nil {
		if errors.Is(err, usecase.ErrProspectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages, "total": len(messages)})
}

// Send dispatches an outbound message.
// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	message, err := h.messageUsecase.Send(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProspectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
		case errors.Is(err, usecase.ErrNoProspectEmail):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

// Conversations lists the caller's threads, newest activity first.
// GET /api/messages/conversations
func (h *MessageHandler) Conversations(c *gin.Context) {
	userID := c.GetString("userID")

	conversations, err := h.messageUsecase.Conversations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "conversations": conversations, "total": len(conversations)})
}

// MarkRead sets read_at on a received message.
// PATCH /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	message, err := h.messageUsecase.MarkRead(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "message not found"})
		case errors.Is(err, usecase.ErrNotReceived):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Draft asks the AI provider for an outreach draft.
// POST /api/messages/draft
func (h *MessageHandler) Draft(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	draft, err := h.messageUsecase.GenerateDraft(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProspectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prospect not found"})
		case errors.Is(err, usecase.ErrDraftsUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "draft": draft})
}
