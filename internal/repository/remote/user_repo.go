package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/models"
	"sasyak-admin/internal/repository"
)

// DeletedMessage is returned by Delete on any 2xx, whatever the body says.
const DeletedMessage = "User deleted successfully"

const (
	defaultPage = 0
	defaultSize = 10
)

// Doer is the slice of *apiclient.Client the repository needs.
type Doer interface {
	Do(ctx context.Context, method, path string, body, out any, opts ...apiclient.CallOption) error
}

type UserRepo struct{ api Doer }

func NewUserRepo(api Doer) repository.UserRepository { return &UserRepo{api: api} }

func userPath(id int64) string { return fmt.Sprintf("/api/admin/users/%d", id) }

func rolePath(role models.Role) string {
	return "/api/admin/users/by-role/" + url.PathEscape(string(role))
}

func (r *UserRepo) list(ctx context.Context, path string) ([]models.User, error) {
	var out models.UserList
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

func (r *UserRepo) one(ctx context.Context, method, path string, body any) (*models.User, error) {
	var u models.User
	if err := r.api.Do(ctx, method, path, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GET /api/admin/users
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, "/api/admin/users")
}

// GET /api/admin/users/{id}
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.one(ctx, http.MethodGet, userPath(id), nil)
}

// POST /api/admin/users
func (r *UserRepo) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	return r.one(ctx, http.MethodPost, "/api/admin/users", in)
}

// PUT /api/admin/users/{id}
func (r *UserRepo) Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	return r.one(ctx, http.MethodPut, userPath(id), in)
}

// DELETE /api/admin/users/{id}
func (r *UserRepo) Delete(ctx context.Context, id int64) (string, error) {
	if err := r.api.Do(ctx, http.MethodDelete, userPath(id), nil, nil); err != nil {
		return "", err
	}
	return DeletedMessage, nil
}

// GET /api/admin/users/by-role/{role}
func (r *UserRepo) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return r.list(ctx, rolePath(role))
}

// GET /api/admin/users/by-role/{role}/paged?page=&size=
// Pages are 0-indexed on the server.
func (r *UserRepo) ListByRolePaged(ctx context.Context, role models.Role, page, size int) (*models.UserPage, error) {
	if page < 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultSize
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))

	var out models.UserPage
	if err := r.api.Do(ctx, http.MethodGet, rolePath(role)+"/paged?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PUT /api/admin/users/{userId}/assign-manager/{managerId}
func (r *UserRepo) AssignManager(ctx context.Context, userID, managerID int64) (*models.User, error) {
	return r.one(ctx, http.MethodPut, fmt.Sprintf("%s/assign-manager/%d", userPath(userID), managerID), nil)
}

// PUT /api/admin/users/{userId}/remove-manager
func (r *UserRepo) RemoveManager(ctx context.Context, userID int64) (*models.User, error) {
	return r.one(ctx, http.MethodPut, userPath(userID)+"/remove-manager", nil)
}

// GET /api/admin/users/manager/{managerId}
func (r *UserRepo) ListByManager(ctx context.Context, managerID int64) ([]models.User, error) {
	return r.list(ctx, fmt.Sprintf("/api/admin/users/manager/%d", managerID))
}
