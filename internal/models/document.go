package models

import "time"

// DocumentStatus tracks a document through review and signing.
type DocumentStatus string

const (
	DocumentPending     DocumentStatus = "pending"
	DocumentSigned      DocumentStatus = "signed"
	DocumentUnderReview DocumentStatus = "under_review"
	DocumentApproved    DocumentStatus = "approved"
	DocumentRejected    DocumentStatus = "rejected"
)

// Document represents an uploaded file's metadata. The URL is an opaque
// string; there is no storage engine behind it.
type Document struct {
	ID            int            `json:"id"`
	TransactionID *int           `json:"transactionId"`
	UploadedByID  *int           `json:"uploadedById"`
	Name          string         `json:"name"`
	OriginalName  string         `json:"originalName"`
	Type          string         `json:"type"`
	Size          int            `json:"size"`
	URL           string         `json:"url"`
	Status        DocumentStatus `json:"status"`
	IsSigned      bool           `json:"isSigned"`
	SignedAt      *time.Time     `json:"signedAt"`
	SignedByID    *int           `json:"signedById"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// InsertDocument is the accepted shape for creating a document record.
// Status defaults to pending and isSigned to false when omitted.
type InsertDocument struct {
	TransactionID *int           `json:"transactionId"`
	UploadedByID  *int           `json:"uploadedById"`
	Name          string         `json:"name" binding:"required"`
	OriginalName  string         `json:"originalName" binding:"required"`
	Type          string         `json:"type" binding:"required"`
	// Pointer so binding can tell a missing size from a zero-byte file.
	Size          *int           `json:"size" binding:"required"`
	URL           string         `json:"url" binding:"required"`
	Status        DocumentStatus `json:"status" binding:"omitempty,oneof=pending signed under_review approved rejected"`
	IsSigned      *bool          `json:"isSigned"`
	SignedAt      *time.Time     `json:"signedAt"`
	SignedByID    *int           `json:"signedById"`
}

// UpdateDocument carries a partial update; nil fields are left untouched.
type UpdateDocument struct {
	TransactionID *int            `json:"transactionId"`
	UploadedByID  *int            `json:"uploadedById"`
	Name          *string         `json:"name"`
	OriginalName  *string         `json:"originalName"`
	Type          *string         `json:"type"`
	Size          *int            `json:"size"`
	URL           *string         `json:"url"`
	Status        *DocumentStatus `json:"status" binding:"omitempty,oneof=pending signed under_review approved rejected"`
	IsSigned      *bool           `json:"isSigned"`
	SignedAt      *time.Time      `json:"signedAt"`
	SignedByID    *int            `json:"signedById"`
}
