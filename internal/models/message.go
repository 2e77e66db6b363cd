package models

import "time"

// MessageStatus tracks delivery of a message.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// Message represents a chat message on a transaction. Messages are immutable
// once sent; only their read state mutates, so there is no UpdatedAt.
type Message struct {
	ID            int           `json:"id"`
	TransactionID *int          `json:"transactionId"`
	SenderID      *int          `json:"senderId"`
	Content       string        `json:"content"`
	Status        MessageStatus `json:"status"`
	IsRead        bool          `json:"isRead"`
	ReadAt        *time.Time    `json:"readAt"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InsertMessage is the accepted shape for sending a message. RecipientIDs is
// optional and creates per-recipient read-state rows for group messaging.
type InsertMessage struct {
	TransactionID *int          `json:"transactionId"`
	SenderID      *int          `json:"senderId"`
	Content       string        `json:"content" binding:"required"`
	Status        MessageStatus `json:"status" binding:"omitempty,oneof=sent delivered read"`
	RecipientIDs  []int         `json:"recipientIds"`
}

// MessageRecipient links a message to one recipient with independent read state.
type MessageRecipient struct {
	ID          int        `json:"id"`
	MessageID   *int       `json:"messageId"`
	RecipientID *int       `json:"recipientId"`
	IsRead      bool       `json:"isRead"`
	ReadAt      *time.Time `json:"readAt"`
}

// MarkReadRequest is the accepted shape for POST /api/messages/:id/read.
type MarkReadRequest struct {
	UserID int `json:"userId" binding:"required"`
}
