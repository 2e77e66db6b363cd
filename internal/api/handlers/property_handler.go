package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// PropertyHandler handles property CRUD. Property changes carry no realtime
// event; nothing on the dashboard watches them live.
type PropertyHandler struct {
	store *store.MemStore
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(st *store.MemStore) *PropertyHandler {
	return &PropertyHandler{store: st}
}

// List handles GET /api/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllProperties())
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var ins models.InsertProperty
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid property data"})
		return
	}
	c.JSON(http.StatusOK, h.store.CreateProperty(ins))
}

// GetByID handles GET /api/properties/:id.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		return
	}
	property := h.store.GetProperty(id)
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}
