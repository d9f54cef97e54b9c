package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/notify"
	"sasyak-admin/internal/repository"
	"sasyak-admin/internal/tasks"
)

const unassigned = "Unassigned"

// SessionReader is the part of *session.Manager the services read.
type SessionReader interface {
	Current(ctx context.Context) (models.Session, bool)
}

type CreateTaskInput struct {
	TaskType    models.TaskType
	Description string
	AssigneeID  *int64 // an EMPLOYEE id; nil leaves the task unassigned
	Details     models.Details
}

type TaskService struct {
	board    *tasks.Board
	inbox    *tasks.Inbox
	users    repository.UserRepository
	sessions SessionReader
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewTaskService(board *tasks.Board, inbox *tasks.Inbox, users repository.UserRepository, sessions SessionReader, n notify.Notifier, l zerolog.Logger) *TaskService {
	return &TaskService{
		board:    board,
		inbox:    inbox,
		users:    users,
		sessions: sessions,
		notifier: n,
		log:      l.With().Str("component", "tasks").Logger(),
	}
}

func (s *TaskService) Board() *tasks.Board { return s.board }
func (s *TaskService) Inbox() *tasks.Inbox { return s.inbox }

// Create authors a task for the signed-in user. A failed employee lookup is
// reported but does not stop the task; it is then left unassigned.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (models.Task, error) {
	sess, _ := s.sessions.Current(ctx)

	t, err := s.board.Create(tasks.CreateInput{
		TaskType:    in.TaskType,
		Description: in.Description,
		CreatedBy:   sess.DisplayName(),
		AssignedTo:  s.assignee(ctx, in.AssigneeID),
		Details:     in.Details,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.inbox.Add("New Task Assigned",
		fmt.Sprintf("A new task '%s' has been assigned", t.Description), t.ID, t.CreatedAt)
	s.log.Info().Int64("task_id", t.ID).Str("type", string(t.TaskType)).Str("assigned_to", t.AssignedTo).Msg("task created")
	s.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDefault,
		Title:       "Task created",
		Description: "The task has been created and assigned successfully.",
	})
	return t, nil
}

func (s *TaskService) assignee(ctx context.Context, id *int64) string {
	if id == nil {
		return unassigned
	}
	employees, err := s.users.ListByRole(ctx, models.RoleEmployee)
	if err != nil {
		s.log.Warn().Err(err).Msg("employee lookup failed")
		s.notifier.Notify(ctx, models.Notification{
			Variant:     models.VariantDestructive,
			Title:       "Error",
			Description: "Failed to load employees for task assignment.",
		})
		return unassigned
	}
	for _, e := range employees {
		if e.ID == *id {
			return e.Name
		}
	}
	return unassigned
}

// UpdateStatus returns tasks.ErrTaskNotFound unchanged for unknown ids.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) (models.Task, error) {
	t, err := s.board.UpdateStatus(id, status)
	if err != nil {
		return models.Task{}, err
	}

	s.inbox.Add("Task Status Updated",
		fmt.Sprintf("Task '%s' has been marked as %s", t.Description, tasks.StatusLabel(t.Status)), t.ID, t.UpdatedAt)
	s.log.Info().Int64("task_id", t.ID).Str("status", string(t.Status)).Msg("task status updated")
	s.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDefault,
		Title:       "Task updated",
		Description: fmt.Sprintf("Task status updated to %s.", t.Status),
	})
	return t, nil
}
