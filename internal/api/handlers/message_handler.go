package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// MessageHandler handles messages and their read state. New messages are not
// echoed back to the sender over the realtime channel.
type MessageHandler struct {
	store       *store.MemStore
	broadcaster Broadcaster
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(st *store.MemStore, b Broadcaster) *MessageHandler {
	return &MessageHandler{store: st, broadcaster: b}
}

// List handles GET /api/messages.
func (h *MessageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllMessages())
}

// Create handles POST /api/messages.
func (h *MessageHandler) Create(c *gin.Context) {
	var ins models.InsertMessage
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data"})
		return
	}

	message := h.store.CreateMessage(ins)

	exclude := 0
	if message.SenderID != nil {
		exclude = *message.SenderID
	}
	h.broadcaster.Broadcast(hub.Event{"type": hub.EventMessageCreated, "message": message}, exclude)
	c.JSON(http.StatusOK, message)
}

// GetByID handles GET /api/messages/:id.
func (h *MessageHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	message := h.store.GetMessage(id)
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// ByTransaction handles GET /api/messages/transaction/:transactionId.
func (h *MessageHandler) ByTransaction(c *gin.Context) {
	transactionID, ok := pathID(c, "transactionId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.MessagesByTransaction(transactionID))
}

// ByUser handles GET /api/messages/user/:userId, keyed on the sender.
func (h *MessageHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.MessagesBySender(userID))
}

// MarkRead handles POST /api/messages/:id/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	var req models.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to mark message as read"})
		return
	}

	message := h.store.MarkMessageRead(id, req.UserID)
	if message == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	h.broadcaster.Broadcast(hub.Event{"type": hub.EventMessageRead, "messageId": message.ID, "userId": req.UserID}, 0)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Recipients handles GET /api/messages/:id/recipients.
func (h *MessageHandler) Recipients(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	if h.store.GetMessage(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.MessageRecipients(id))
}
