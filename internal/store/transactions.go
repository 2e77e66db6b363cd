package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetTransaction returns the transaction with the given id, or nil if absent.
func (s *MemStore) GetTransaction(id int) *models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTransaction(s.transactions[id])
}

// CreateTransaction assigns an id, defaults the status to pending and stores
// the transaction. Party references are not checked against the user map.
func (s *MemStore) CreateTransaction(ins models.InsertTransaction) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	transaction := &models.Transaction{
		ID:                s.nextTransaction,
		PropertyID:        ins.PropertyID,
		AgentID:           ins.AgentID,
		BuyerID:           ins.BuyerID,
		SellerID:          ins.SellerID,
		LenderID:          ins.LenderID,
		TitleCompanyID:    ins.TitleCompanyID,
		Status:            ins.Status,
		ContractDate:      ins.ContractDate,
		ClosingDate:       ins.ClosingDate,
		ExpectedCloseDate: ins.ExpectedCloseDate,
		PurchasePrice:     ins.PurchasePrice,
		LoanAmount:        ins.LoanAmount,
		EarnestMoney:      ins.EarnestMoney,
		Notes:             ins.Notes,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	if transaction.Status == "" {
		transaction.Status = models.TransactionPending
	}
	s.nextTransaction++
	s.transactions[transaction.ID] = transaction
	s.transactionOrder = append(s.transactionOrder, transaction.ID)
	return copyTransaction(transaction)
}

// UpdateTransaction merges the supplied fields and refreshes UpdatedAt.
// Returns nil if the id is unknown.
func (s *MemStore) UpdateTransaction(id int, upd models.UpdateTransaction) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction, ok := s.transactions[id]
	if !ok {
		return nil
	}
	if upd.PropertyID != nil {
		transaction.PropertyID = upd.PropertyID
	}
	if upd.AgentID != nil {
		transaction.AgentID = upd.AgentID
	}
	if upd.BuyerID != nil {
		transaction.BuyerID = upd.BuyerID
	}
	if upd.SellerID != nil {
		transaction.SellerID = upd.SellerID
	}
	if upd.LenderID != nil {
		transaction.LenderID = upd.LenderID
	}
	if upd.TitleCompanyID != nil {
		transaction.TitleCompanyID = upd.TitleCompanyID
	}
	if upd.Status != nil {
		transaction.Status = *upd.Status
	}
	if upd.ContractDate != nil {
		transaction.ContractDate = upd.ContractDate
	}
	if upd.ClosingDate != nil {
		transaction.ClosingDate = upd.ClosingDate
	}
	if upd.ExpectedCloseDate != nil {
		transaction.ExpectedCloseDate = upd.ExpectedCloseDate
	}
	if upd.PurchasePrice != nil {
		transaction.PurchasePrice = upd.PurchasePrice
	}
	if upd.LoanAmount != nil {
		transaction.LoanAmount = upd.LoanAmount
	}
	if upd.EarnestMoney != nil {
		transaction.EarnestMoney = upd.EarnestMoney
	}
	if upd.Notes != nil {
		transaction.Notes = upd.Notes
	}
	transaction.UpdatedAt = now()
	return copyTransaction(transaction)
}

// AllTransactions returns every transaction in insertion order.
func (s *MemStore) AllTransactions() []*models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transactions := make([]*models.Transaction, 0, len(s.transactionOrder))
	for _, id := range s.transactionOrder {
		transactions = append(transactions, copyTransaction(s.transactions[id]))
	}
	return transactions
}

// TransactionsByUser returns every transaction where the user id matches any
// of the five party references.
func (s *MemStore) TransactionsByUser(userID int) []*models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transactions := []*models.Transaction{}
	for _, id := range s.transactionOrder {
		if s.transactions[id].HasParticipant(userID) {
			transactions = append(transactions, copyTransaction(s.transactions[id]))
		}
	}
	return transactions
}

// TransactionsByStatus returns every transaction with the given status.
func (s *MemStore) TransactionsByStatus(status models.TransactionStatus) []*models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transactions := []*models.Transaction{}
	for _, id := range s.transactionOrder {
		if s.transactions[id].Status == status {
			transactions = append(transactions, copyTransaction(s.transactions[id]))
		}
	}
	return transactions
}

func copyTransaction(t *models.Transaction) *models.Transaction {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
