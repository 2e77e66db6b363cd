package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetMessage returns the message with the given id, or nil if absent.
func (s *MemStore) GetMessage(id int) *models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessage(s.messages[id])
}

// CreateMessage assigns an id, defaults status to sent, and stores the
// message. A per-recipient read-state row is created for each entry in
// RecipientIDs. Messages carry no UpdatedAt; they are immutable once sent.
func (s *MemStore) CreateMessage(ins models.InsertMessage) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := &models.Message{
		ID:            s.nextMessage,
		TransactionID: ins.TransactionID,
		SenderID:      ins.SenderID,
		Content:       ins.Content,
		Status:        ins.Status,
		CreatedAt:     now(),
	}
	if message.Status == "" {
		message.Status = models.MessageSent
	}
	s.nextMessage++
	s.messages[message.ID] = message
	s.messageOrder = append(s.messageOrder, message.ID)

	for _, recipientID := range ins.RecipientIDs {
		rid := recipientID
		mid := message.ID
		recipient := &models.MessageRecipient{
			ID:          s.nextRecipient,
			MessageID:   &mid,
			RecipientID: &rid,
		}
		s.nextRecipient++
		s.recipients[recipient.ID] = recipient
		s.recipientOrder = append(s.recipientOrder, recipient.ID)
	}

	return copyMessage(message)
}

// AllMessages returns every message in insertion order.
func (s *MemStore) AllMessages() []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]*models.Message, 0, len(s.messageOrder))
	for _, id := range s.messageOrder {
		messages = append(messages, copyMessage(s.messages[id]))
	}
	return messages
}

// MessagesByTransaction returns every message tied to the given transaction.
func (s *MemStore) MessagesByTransaction(transactionID int) []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := []*models.Message{}
	for _, id := range s.messageOrder {
		if m := s.messages[id]; m.TransactionID != nil && *m.TransactionID == transactionID {
			messages = append(messages, copyMessage(m))
		}
	}
	return messages
}

// MessagesBySender returns every message sent by the given user.
func (s *MemStore) MessagesBySender(userID int) []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := []*models.Message{}
	for _, id := range s.messageOrder {
		if m := s.messages[id]; m.SenderID != nil && *m.SenderID == userID {
			messages = append(messages, copyMessage(m))
		}
	}
	return messages
}

// MarkMessageRead flags the message as read and stamps ReadAt. When the
// reading user has a per-recipient row for the message, that row is flagged
// too. Returns the updated message, or nil if the id is unknown.
func (s *MemStore) MarkMessageRead(messageID, userID int) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[messageID]
	if !ok {
		return nil
	}
	ts := now()
	message.IsRead = true
	message.ReadAt = &ts

	for _, id := range s.recipientOrder {
		r := s.recipients[id]
		if r.MessageID != nil && *r.MessageID == messageID &&
			r.RecipientID != nil && *r.RecipientID == userID && !r.IsRead {
			r.IsRead = true
			at := ts
			r.ReadAt = &at
		}
	}
	return copyMessage(message)
}

// CreateMessageRecipient assigns an id and stores a recipient row.
func (s *MemStore) CreateMessageRecipient(messageID, recipientID int) *models.MessageRecipient {
	s.mu.Lock()
	defer s.mu.Unlock()

	mid := messageID
	rid := recipientID
	recipient := &models.MessageRecipient{
		ID:          s.nextRecipient,
		MessageID:   &mid,
		RecipientID: &rid,
	}
	s.nextRecipient++
	s.recipients[recipient.ID] = recipient
	s.recipientOrder = append(s.recipientOrder, recipient.ID)
	return copyRecipient(recipient)
}

// MessageRecipients returns the recipient rows for a message in insertion order.
func (s *MemStore) MessageRecipients(messageID int) []*models.MessageRecipient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipients := []*models.MessageRecipient{}
	for _, id := range s.recipientOrder {
		if r := s.recipients[id]; r.MessageID != nil && *r.MessageID == messageID {
			recipients = append(recipients, copyRecipient(r))
		}
	}
	return recipients
}

func copyMessage(m *models.Message) *models.Message {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

func copyRecipient(r *models.MessageRecipient) *models.MessageRecipient {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}
