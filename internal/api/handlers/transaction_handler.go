package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// TransactionHandler handles transaction CRUD and broadcasts mutations.
type TransactionHandler struct {
	store       *store.MemStore
	broadcaster Broadcaster
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(st *store.MemStore, b Broadcaster) *TransactionHandler {
	return &TransactionHandler{store: st, broadcaster: b}
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllTransactions())
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var ins models.InsertTransaction
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction data"})
		return
	}

	transaction := h.store.CreateTransaction(ins)
	h.broadcaster.Broadcast(hub.Event{"type": hub.EventTransactionCreated, "transaction": transaction}, 0)
	c.JSON(http.StatusOK, transaction)
}

// GetByID handles GET /api/transactions/:id.
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	transaction := h.store.GetTransaction(id)
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Update handles PATCH /api/transactions/:id.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	var upd models.UpdateTransaction
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction data"})
		return
	}

	transaction := h.store.UpdateTransaction(id, upd)
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}

	h.broadcaster.Broadcast(hub.Event{"type": hub.EventTransactionUpdated, "transaction": transaction}, 0)
	c.JSON(http.StatusOK, transaction)
}

// ByUser handles GET /api/transactions/user/:userId.
func (h *TransactionHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.TransactionsByUser(userID))
}

// ByStatus handles GET /api/transactions/status/:status.
func (h *TransactionHandler) ByStatus(c *gin.Context) {
	status := models.TransactionStatus(c.Param("status"))
	c.JSON(http.StatusOK, h.store.TransactionsByStatus(status))
}
