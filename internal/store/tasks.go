package store

import "github.com/saieswarnookala/project-X/internal/models"

// GetTask returns the task with the given id, or nil if absent.
func (s *MemStore) GetTask(id int) *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTask(s.tasks[id])
}

// CreateTask assigns an id, defaults status to pending and priority to medium,
// and stores the task. The transaction reference is not checked.
func (s *MemStore) CreateTask(ins models.InsertTask) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	task := &models.Task{
		ID:            s.nextTask,
		TransactionID: ins.TransactionID,
		AssignedToID:  ins.AssignedToID,
		CreatedByID:   ins.CreatedByID,
		Title:         ins.Title,
		Description:   ins.Description,
		Status:        ins.Status,
		Priority:      ins.Priority,
		DueDate:       ins.DueDate,
		CompletedAt:   ins.CompletedAt,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	s.nextTask++
	s.tasks[task.ID] = task
	s.taskOrder = append(s.taskOrder, task.ID)
	return copyTask(task)
}

// UpdateTask merges the supplied fields and refreshes UpdatedAt.
// Returns nil if the id is unknown.
func (s *MemStore) UpdateTask(id int, upd models.UpdateTask) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil
	}
	if upd.TransactionID != nil {
		task.TransactionID = upd.TransactionID
	}
	if upd.AssignedToID != nil {
		task.AssignedToID = upd.AssignedToID
	}
	if upd.CreatedByID != nil {
		task.CreatedByID = upd.CreatedByID
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}
	if upd.CompletedAt != nil {
		task.CompletedAt = upd.CompletedAt
	}
	task.UpdatedAt = now()
	return copyTask(task)
}

// AllTasks returns every task in insertion order.
func (s *MemStore) AllTasks() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]*models.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		tasks = append(tasks, copyTask(s.tasks[id]))
	}
	return tasks
}

// TasksByTransaction returns every task tied to the given transaction.
func (s *MemStore) TasksByTransaction(transactionID int) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := []*models.Task{}
	for _, id := range s.taskOrder {
		if t := s.tasks[id]; t.TransactionID != nil && *t.TransactionID == transactionID {
			tasks = append(tasks, copyTask(t))
		}
	}
	return tasks
}

// TasksByAssignee returns every task assigned to the given user.
func (s *MemStore) TasksByAssignee(userID int) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := []*models.Task{}
	for _, id := range s.taskOrder {
		if t := s.tasks[id]; t.AssignedToID != nil && *t.AssignedToID == userID {
			tasks = append(tasks, copyTask(t))
		}
	}
	return tasks
}

// TasksByStatus returns every task with the given status.
func (s *MemStore) TasksByStatus(status models.TaskStatus) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := []*models.Task{}
	for _, id := range s.taskOrder {
		if s.tasks[id].Status == status {
			tasks = append(tasks, copyTask(s.tasks[id]))
		}
	}
	return tasks
}

func copyTask(t *models.Task) *models.Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
