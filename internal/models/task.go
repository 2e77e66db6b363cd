package models

import "time"

// TaskStatus tracks the state of a checklist item.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
)

// TaskPriority grades how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task represents a to-do item, optionally tied to a transaction and an assignee.
type Task struct {
	ID            int          `json:"id"`
	TransactionID *int         `json:"transactionId"`
	AssignedToID  *int         `json:"assignedToId"`
	CreatedByID   *int         `json:"createdById"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	DueDate       *time.Time   `json:"dueDate"`
	CompletedAt   *time.Time   `json:"completedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// InsertTask is the accepted shape for creating a task.
// Status defaults to pending and priority to medium when omitted.
type InsertTask struct {
	TransactionID *int         `json:"transactionId"`
	AssignedToID  *int         `json:"assignedToId"`
	CreatedByID   *int         `json:"createdById"`
	Title         string       `json:"title" binding:"required"`
	Description   *string      `json:"description"`
	Status        TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed overdue"`
	Priority      TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate       *time.Time   `json:"dueDate"`
	CompletedAt   *time.Time   `json:"completedAt"`
}

// UpdateTask carries a partial update; nil fields are left untouched.
type UpdateTask struct {
	TransactionID *int          `json:"transactionId"`
	AssignedToID  *int          `json:"assignedToId"`
	CreatedByID   *int          `json:"createdById"`
	Title         *string       `json:"title"`
	Description   *string       `json:"description"`
	Status        *TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed overdue"`
	Priority      *TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate       *time.Time    `json:"dueDate"`
	CompletedAt   *time.Time    `json:"completedAt"`
}
