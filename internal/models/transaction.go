package models

import "time"

// TransactionStatus tracks where a deal sits in its lifecycle.
type TransactionStatus string

const (
	TransactionPending     TransactionStatus = "pending"
	TransactionActive      TransactionStatus = "active"
	TransactionUnderReview TransactionStatus = "under_review"
	TransactionCompleted   TransactionStatus = "completed"
	TransactionCancelled   TransactionStatus = "cancelled"
)

// Transaction represents a real-estate deal. All party references are weak
// foreign keys: they are not checked against the store at write time.
type Transaction struct {
	ID                int               `json:"id"`
	PropertyID        *int              `json:"propertyId"`
	AgentID           *int              `json:"agentId"`
	BuyerID           *int              `json:"buyerId"`
	SellerID          *int              `json:"sellerId"`
	LenderID          *int              `json:"lenderId"`
	TitleCompanyID    *int              `json:"titleCompanyId"`
	Status            TransactionStatus `json:"status"`
	ContractDate      *time.Time        `json:"contractDate"`
	ClosingDate       *time.Time        `json:"closingDate"`
	ExpectedCloseDate *time.Time        `json:"expectedCloseDate"`
	PurchasePrice     *string           `json:"purchasePrice"`
	LoanAmount        *string           `json:"loanAmount"`
	EarnestMoney      *string           `json:"earnestMoney"`
	Notes             *string           `json:"notes"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// InsertTransaction is the accepted shape for creating a transaction.
// Status defaults to pending when omitted.
type InsertTransaction struct {
	PropertyID        *int              `json:"propertyId"`
	AgentID           *int              `json:"agentId"`
	BuyerID           *int              `json:"buyerId"`
	SellerID          *int              `json:"sellerId"`
	LenderID          *int              `json:"lenderId"`
	TitleCompanyID    *int              `json:"titleCompanyId"`
	Status            TransactionStatus `json:"status" binding:"omitempty,oneof=pending active under_review completed cancelled"`
	ContractDate      *time.Time        `json:"contractDate"`
	ClosingDate       *time.Time        `json:"closingDate"`
	ExpectedCloseDate *time.Time        `json:"expectedCloseDate"`
	PurchasePrice     *string           `json:"purchasePrice"`
	LoanAmount        *string           `json:"loanAmount"`
	EarnestMoney      *string           `json:"earnestMoney"`
	Notes             *string           `json:"notes"`
}

// UpdateTransaction carries a partial update; nil fields are left untouched.
type UpdateTransaction struct {
	PropertyID        *int               `json:"propertyId"`
	AgentID           *int               `json:"agentId"`
	BuyerID           *int               `json:"buyerId"`
	SellerID          *int               `json:"sellerId"`
	LenderID          *int               `json:"lenderId"`
	TitleCompanyID    *int               `json:"titleCompanyId"`
	Status            *TransactionStatus `json:"status" binding:"omitempty,oneof=pending active under_review completed cancelled"`
	ContractDate      *time.Time         `json:"contractDate"`
	ClosingDate       *time.Time         `json:"closingDate"`
	ExpectedCloseDate *time.Time         `json:"expectedCloseDate"`
	PurchasePrice     *string            `json:"purchasePrice"`
	LoanAmount        *string            `json:"loanAmount"`
	EarnestMoney      *string            `json:"earnestMoney"`
	Notes             *string            `json:"notes"`
}

// ParticipantIDs returns the non-nil party references of the transaction.
func (t *Transaction) ParticipantIDs() []int {
	var ids []int
	for _, ref := range []*int{t.AgentID, t.BuyerID, t.SellerID, t.LenderID, t.TitleCompanyID} {
		if ref != nil {
			ids = append(ids, *ref)
		}
	}
	return ids
}

// HasParticipant reports whether userID matches any of the five party references.
func (t *Transaction) HasParticipant(userID int) bool {
	for _, id := range t.ParticipantIDs() {
		if id == userID {
			return true
		}
	}
	return false
}
