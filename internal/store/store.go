// Package store holds all entity state in process memory. It is the single
// source of truth for reads and writes; nothing is persisted and everything
// is lost on restart.
package store

import (
	"sync"
	"time"

	"github.com/saieswarnookala/project-X/internal/models"
)

// MemStore is the in-memory entity store. Identifiers are assigned from a
// monotonic per-kind counter starting at 1 and are never reused. Entities are
// never deleted; listings come back in insertion order.
//
// Construct one instance at process start and inject it; the lock makes map
// access atomic under Go's concurrent request handling.
type MemStore struct {
	mu sync.RWMutex

	users     map[int]*models.User
	userOrder []int
	nextUser  int

	properties    map[int]*models.Property
	propertyOrder []int
	nextProperty  int

	transactions     map[int]*models.Transaction
	transactionOrder []int
	nextTransaction  int

	tasks     map[int]*models.Task
	taskOrder []int
	nextTask  int

	documents     map[int]*models.Document
	documentOrder []int
	nextDocument  int

	messages     map[int]*models.Message
	messageOrder []int
	nextMessage  int

	recipients     map[int]*models.MessageRecipient
	recipientOrder []int
	nextRecipient  int
}

// New creates an empty MemStore.
func New() *MemStore {
	return &MemStore{
		users:           make(map[int]*models.User),
		nextUser:        1,
		properties:      make(map[int]*models.Property),
		nextProperty:    1,
		transactions:    make(map[int]*models.Transaction),
		nextTransaction: 1,
		tasks:           make(map[int]*models.Task),
		nextTask:        1,
		documents:       make(map[int]*models.Document),
		nextDocument:    1,
		messages:        make(map[int]*models.Message),
		nextMessage:     1,
		recipients:      make(map[int]*models.MessageRecipient),
		nextRecipient:   1,
	}
}

// now is the single clock for created/updated timestamps.
func now() time.Time {
	return time.Now().UTC()
}
