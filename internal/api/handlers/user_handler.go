package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// UserHandler handles read access to users. Creation goes through
// registration so uniqueness checks cannot be bypassed.
type UserHandler struct {
	store *store.MemStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(st *store.MemStore) *UserHandler {
	return &UserHandler{store: st}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllUsers())
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	user := h.store.GetUser(id)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ByRole handles GET /api/users/role/:role.
func (h *UserHandler) ByRole(c *gin.Context) {
	role := models.UserRole(c.Param("role"))
	c.JSON(http.StatusOK, h.store.UsersByRole(role))
}
