package tasks

import (
	"sync"
	"time"

	"sasyak-admin/internal/models"
)

// Inbox holds task notifications newest first.
type Inbox struct {
	mu    sync.Mutex
	items []models.TaskNotification
}

func NewInbox(seed []models.TaskNotification) *Inbox {
	return &Inbox{items: append([]models.TaskNotification(nil), seed...)}
}

// Add puts an unread entry at the head of the inbox.
func (i *Inbox) Add(title, message string, taskID int64, at time.Time) models.TaskNotification {
	i.mu.Lock()
	defer i.mu.Unlock()

	var maxID int64
	for _, n := range i.items {
		maxID = max(maxID, n.ID)
	}
	n := models.TaskNotification{
		ID:        maxID + 1,
		Title:     title,
		Message:   message,
		TaskID:    taskID,
		CreatedAt: at,
	}
	i.items = append([]models.TaskNotification{n}, i.items...)
	return n
}

func (i *Inbox) List() []models.TaskNotification {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]models.TaskNotification(nil), i.items...)
}

func (i *Inbox) UnreadCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	n := 0
	for _, it := range i.items {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// MarkRead reports whether an entry with id exists.
func (i *Inbox) MarkRead(id int64) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		if i.items[k].ID == id {
			i.items[k].IsRead = true
			return true
		}
	}
	return false
}

// MarkAllRead returns how many entries changed.
func (i *Inbox) MarkAllRead() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	n := 0
	for k := range i.items {
		if !i.items[k].IsRead {
			i.items[k].IsRead = true
			n++
		}
	}
	return n
}
