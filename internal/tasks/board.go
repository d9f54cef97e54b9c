// Package tasks is the in-memory task collection and its status model.
// Nothing here is persisted; a new process starts from the seed data.
package tasks

import (
	"errors"
	"sync"
	"time"

	"sasyak-admin/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUnknownStatus   = errors.New("unknown task status")
	ErrUnknownTaskType = errors.New("unknown task type")
	ErrDetailsMismatch = errors.New("details do not match task type")
)

// Board holds tasks newest first. Any status may move to any other; there
// is no transition guard.
type Board struct {
	mu    sync.Mutex
	tasks []models.Task
	now   func() time.Time
}

type Option func(*Board)

func WithClock(now func() time.Time) Option { return func(b *Board) { b.now = now } }

// NewBoard starts from seed, kept in the order given.
func NewBoard(seed []models.Task, opts ...Option) *Board {
	b := &Board{tasks: make([]models.Task, len(seed)), now: time.Now}
	for i, t := range seed {
		b.tasks[i] = cloneTask(t)
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

type CreateInput struct {
	TaskType    models.TaskType
	Description string
	CreatedBy   string
	AssignedTo  string
	Details     models.Details // nil means the type's empty details
}

// Create stores a copy of in.Details; later changes to the caller's value do
// not reach the board.
func (b *Board) Create(in CreateInput) (models.Task, error) {
	d := models.CloneDetails(in.Details)
	if d == nil {
		zero, ok := models.ZeroDetails(in.TaskType)
		if !ok {
			return models.Task{}, ErrUnknownTaskType
		}
		d = zero
	} else if !in.TaskType.Valid() {
		return models.Task{}, ErrUnknownTaskType
	} else if d.TaskType() != in.TaskType {
		return models.Task{}, ErrDetailsMismatch
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var maxID int64
	for _, t := range b.tasks {
		maxID = max(maxID, t.ID)
	}
	now := b.now()
	t := models.Task{
		ID:          maxID + 1,
		TaskType:    in.TaskType,
		Description: in.Description,
		Status:      models.StatusPending,
		CreatedBy:   in.CreatedBy,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
		Details:     d,
	}
	b.tasks = append([]models.Task{t}, b.tasks...)
	return cloneTask(t), nil
}

// UpdateStatus sets the status and refreshes UpdatedAt. An unknown id
// changes nothing and reports ErrTaskNotFound, which callers may ignore.
func (b *Board) UpdateStatus(id int64, status models.TaskStatus) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, ErrUnknownStatus
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.tasks {
		t := &b.tasks[i]
		if t.ID != id {
			continue
		}
		now := b.now()
		// UpdatedAt only moves forward.
		if !now.After(t.UpdatedAt) {
			now = t.UpdatedAt.Add(time.Nanosecond)
		}
		t.Status = status
		t.UpdatedAt = now
		return cloneTask(*t), nil
	}
	return models.Task{}, ErrTaskNotFound
}

func (b *Board) Get(id int64) (models.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return models.Task{}, false
}

// List returns a copy of all tasks, newest first.
func (b *Board) List() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Task, len(b.tasks))
	for i, t := range b.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

func cloneTask(t models.Task) models.Task {
	t.Details = models.CloneDetails(t.Details)
	return t
}

type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Scheduled  int `json:"scheduled"`
}

func (b *Board) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Stats{Total: len(b.tasks)}
	for _, t := range b.tasks {
		switch t.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusCompleted:
			s.Completed++
		case models.StatusScheduled:
			s.Scheduled++
		}
	}
	return s
}
