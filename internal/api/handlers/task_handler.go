package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/models"
	"github.com/saieswarnookala/project-X/internal/store"
)

// TaskHandler handles task CRUD and broadcasts mutations.
type TaskHandler struct {
	store       *store.MemStore
	broadcaster Broadcaster
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(st *store.MemStore, b Broadcaster) *TaskHandler {
	return &TaskHandler{store: st, broadcaster: b}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllTasks())
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var ins models.InsertTask
	if err := c.ShouldBindJSON(&ins); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data"})
		return
	}

	task := h.store.CreateTask(ins)
	h.broadcaster.Broadcast(hub.Event{"type": hub.EventTaskCreated, "task": task}, 0)
	c.JSON(http.StatusOK, task)
}

// GetByID handles GET /api/tasks/:id.
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	task := h.store.GetTask(id)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update handles PATCH /api/tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	var upd models.UpdateTask
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task data"})
		return
	}

	task := h.store.UpdateTask(id, upd)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	h.broadcaster.Broadcast(hub.Event{"type": hub.EventTaskUpdated, "task": task}, 0)
	c.JSON(http.StatusOK, task)
}

// ByTransaction handles GET /api/tasks/transaction/:transactionId.
func (h *TaskHandler) ByTransaction(c *gin.Context) {
	transactionID, ok := pathID(c, "transactionId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.TasksByTransaction(transactionID))
}

// ByUser handles GET /api/tasks/user/:userId, keyed on the assignee.
func (h *TaskHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.TasksByAssignee(userID))
}

// ByStatus handles GET /api/tasks/status/:status.
func (h *TaskHandler) ByStatus(c *gin.Context) {
	status := models.TaskStatus(c.Param("status"))
	c.JSON(http.StatusOK, h.store.TasksByStatus(status))
}
