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

type DashboardStats struct {
	Employees   int         `json:"employees"`
	Managers    int         `json:"managers"`
	Supervisors int         `json:"supervisors"`
	Tasks       tasks.Stats `json:"tasks"`
}

type DashboardService struct {
	users    repository.UserRepository
	board    *tasks.Board
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewDashboardService(users repository.UserRepository, board *tasks.Board, n notify.Notifier, l zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, board: board, notifier: n, log: l.With().Str("component", "dashboard").Logger()}
}

// Stats counts every user plus managers and supervisors. Any failed call
// fails the whole summary.
func (d *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	out := DashboardStats{Tasks: d.board.Stats()}

	all, err := d.users.List(ctx)
	if err != nil {
		return d.failed(ctx, err)
	}
	managers, err := d.users.ListByRole(ctx, models.RoleManager)
	if err != nil {
		return d.failed(ctx, err)
	}
	supervisors, err := d.users.ListByRole(ctx, models.RoleSupervisor)
	if err != nil {
		return d.failed(ctx, err)
	}

	out.Employees = len(all)
	out.Managers = len(managers)
	out.Supervisors = len(supervisors)
	return out, nil
}

func (d *DashboardService) failed(ctx context.Context, err error) (DashboardStats, error) {
	d.log.Error().Err(err).Msg("dashboard load failed")
	d.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDestructive,
		Title:       "Error fetching data",
		Description: "There was a problem loading the dashboard data.",
	})
	return DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
}

// AddEmployee creates a user from the dashboard's quick-add form.
func (d *DashboardService) AddEmployee(ctx context.Context, in models.UserInput) (*models.User, error) {
	u, err := d.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	d.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDefault,
		Title:       "Employee added successfully",
		Description: fmt.Sprintf("%s has been added to the system.", u.Name),
	})
	return u, nil
}
