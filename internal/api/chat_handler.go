package api

import (
	"fmt"
	"net/http"
	"strconv"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultMessageLimit = 50

// ChatHandler serves the trainer/client message thread endpoints.
type ChatHandler struct {
	chat service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// SendMessageRequest is the POST /api/messages body.
type SendMessageRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	SenderID       string `json:"sender_id" binding:"required"`
	Content        string `json:"content" binding:"required"`
}

// SendMessage handles POST /api/messages.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	msg := domain.Message{
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		Content:        req.Content,
		Read:           false,
	}

	id, err := h.chat.SendMessage(c.Request.Context(), &msg)
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListMessages handles GET /api/messages?conversation_id=&limit=.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		abortWithError(c, http.StatusBadRequest, "conversation_id is required")
		return
	}

	limit, ok := limitParam(c, defaultMessageLimit)
	if !ok {
		return
	}

	messages, err := h.chat.ListMessages(c.Request.Context(), conversationID, limit)
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, messages)
}

// limitParam parses the optional numeric limit query parameter,
// aborting with 400 on garbage. Returns ok=false when aborted.
func limitParam(c *gin.Context, fallback int64) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}
