package models

type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleSupervisor Role = "SUPERVISOR"
	RoleManager    Role = "MANAGER"
	RoleAdmin      Role = "ADMIN"
)

type User struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"` // EMPLOYEE | SUPERVISOR | MANAGER
	PhoneNumber *string `json:"phone_number,omitempty"`
	ManagerID   *int64  `json:"managerId,omitempty"`
	TenantID    *string `json:"tenantId,omitempty"`
}

// UserInput is the body for create and update. Zero fields are left out so
// an update only replaces what is set.
type UserInput struct {
	Name        string  `json:"name,omitempty"`
	Email       string  `json:"email,omitempty"`
	Role        Role    `json:"role,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	ManagerID   *int64  `json:"managerId,omitempty"`
	TenantID    *string `json:"tenantId,omitempty"`
}

// UserList is the envelope every list endpoint answers with.
type UserList struct {
	Employees []User `json:"employees"`
}

type UserPage struct {
	Employees   []User `json:"employees"`
	TotalItems  int    `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}
