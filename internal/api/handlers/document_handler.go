package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// DocumentHandler handles document metadata CRUD and broadcasts mutations.
// The actual file bytes never pass through this service; URLs are opaque.
type DocumentHandler struct {
	store       *store.MemStore
	broadcaster Broadcaster
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(st *store.MemStore, b Broadcaster) *DocumentHandler {
	return &DocumentHandler{store: st, broadcaster: b}
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllDocuments())
}

// Create handles POST /api/documents.
func (h *DocumentHandler) Create(c *gin.Context) {
	var ins models.InsertDocument
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid document data"})
		return
	}

	document := h.store.CreateDocument(ins)
	h.broadcaster.Broadcast(hub.Event{"type": hub.EventDocumentCreated, "document": document}, 0)
	c.JSON(http.StatusOK, document)
}

// GetByID handles GET /api/documents/:id.
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}
	document := h.store.GetDocument(id)
	if document == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, document)
}

// Update handles PATCH /api/documents/:id.
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}
	var upd models.UpdateDocument
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid document data"})
		return
	}

	document := h.store.UpdateDocument(id, upd)
	if document == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}

	h.broadcaster.Broadcast(hub.Event{"type": hub.EventDocumentUpdated, "document": document}, 0)
	c.JSON(http.StatusOK, document)
}

// ByTransaction handles GET /api/documents/transaction/:transactionId.
func (h *DocumentHandler) ByTransaction(c *gin.Context) {
	transactionID, ok := pathID(c, "transactionId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.DocumentsByTransaction(transactionID))
}

// ByUser handles GET /api/documents/user/:userId, keyed on the uploader.
func (h *DocumentHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.DocumentsByUploader(userID))
}
