package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetDocument returns the document with the given id, or nil if absent.
func (s *MemStore) GetDocument(id int) *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDocument(s.documents[id])
}

// CreateDocument assigns an id, defaults status to pending and isSigned to
// false, and stores the document metadata.
func (s *MemStore) CreateDocument(ins models.InsertDocument) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	document := &models.Document{
		ID:            s.nextDocument,
		TransactionID: ins.TransactionID,
		UploadedByID:  ins.UploadedByID,
		Name:          ins.Name,
		OriginalName:  ins.OriginalName,
		Type:          ins.Type,
		URL:           ins.URL,
		Status:        ins.Status,
		SignedAt:      ins.SignedAt,
		SignedByID:    ins.SignedByID,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if ins.Size != nil {
		document.Size = *ins.Size
	}
	if document.Status == "" {
		document.Status = models.DocumentPending
	}
	if ins.IsSigned != nil {
		document.IsSigned = *ins.IsSigned
	}
	s.nextDocument++
	s.documents[document.ID] = document
	s.documentOrder = append(s.documentOrder, document.ID)
	return copyDocument(document)
}

// UpdateDocument merges the supplied fields and refreshes UpdatedAt.
// Returns nil if the id is unknown.
func (s *MemStore) UpdateDocument(id int, upd models.UpdateDocument) *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, ok := s.documents[id]
	if !ok {
		return nil
	}
	if upd.TransactionID != nil {
		document.TransactionID = upd.TransactionID
	}
	if upd.UploadedByID != nil {
		document.UploadedByID = upd.UploadedByID
	}
	if upd.Name != nil {
		document.Name = *upd.Name
	}
	if upd.OriginalName != nil {
		document.OriginalName = *upd.OriginalName
	}
	if upd.Type != nil {
		document.Type = *upd.Type
	}
	if upd.Size != nil {
		document.Size = *upd.Size
	}
	if upd.URL != nil {
		document.URL = *upd.URL
	}
	if upd.Status != nil {
		document.Status = *upd.Status
	}
	if upd.IsSigned != nil {
		document.IsSigned = *upd.IsSigned
	}
	if upd.SignedAt != nil {
		document.SignedAt = upd.SignedAt
	}
	if upd.SignedByID != nil {
		document.SignedByID = upd.SignedByID
	}
	document.UpdatedAt = now()
	return copyDocument(document)
}

// AllDocuments returns every document in insertion order.
func (s *MemStore) AllDocuments() []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	documents := make([]*models.Document, 0, len(s.documentOrder))
	for _, id := range s.documentOrder {
		documents = append(documents, copyDocument(s.documents[id]))
	}
	return documents
}

// DocumentsByTransaction returns every document tied to the given transaction.
func (s *MemStore) DocumentsByTransaction(transactionID int) []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	documents := []*models.Document{}
	for _, id := range s.documentOrder {
		if d := s.documents[id]; d.TransactionID != nil && *d.TransactionID == transactionID {
			documents = append(documents, copyDocument(d))
		}
	}
	return documents
}

// DocumentsByUploader returns every document uploaded by the given user.
func (s *MemStore) DocumentsByUploader(userID int) []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	documents := []*models.Document{}
	for _, id := range s.documentOrder {
		if d := s.documents[id]; d.UploadedByID != nil && *d.UploadedByID == userID {
			documents = append(documents, copyDocument(d))
		}
	}
	return documents
}

func copyDocument(d *models.Document) *models.Document {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
