package models

import (
	"strings"
	"time"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a one-way, user-visible message (a toast).
type Notification struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// TaskNotification is an entry in the task inbox.
type TaskNotification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TaskID    int64     `json:"taskId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationKind string

const (
	KindCompleted NotificationKind = "completed"
	KindProgress  NotificationKind = "progress"
	KindAssigned  NotificationKind = "assigned"
	KindScheduled NotificationKind = "scheduled"
	KindStatus    NotificationKind = "status"
	KindOther     NotificationKind = "other"
)

// Kind classifies an inbox entry by keywords in its title; first match wins.
func (n TaskNotification) Kind() NotificationKind {
	switch t := n.Title; {
	case strings.Contains(t, "Completed"):
		return KindCompleted
	case strings.Contains(t, "Progress"):
		return KindProgress
	case strings.Contains(t, "Assigned"), strings.Contains(t, "New Task"):
		return KindAssigned
	case strings.Contains(t, "Scheduled"):
		return KindScheduled
	case strings.Contains(t, "Status"):
		return KindStatus
	}
	return KindOther
}
