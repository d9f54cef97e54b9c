package repository

import (
	"context"

	"sasyak-admin/internal/models"
)

// UserRepository is the user-management surface of the remote service.
// Failures come back as *apiclient.RemoteError, unchanged.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) (string, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
	ListByRolePaged(ctx context.Context, role models.Role, page, size int) (*models.UserPage, error)
	AssignManager(ctx context.Context, userID, managerID int64) (*models.User, error)
	RemoveManager(ctx context.Context, userID int64) (*models.User, error)
	ListByManager(ctx context.Context, managerID int64) ([]models.User, error)
}
