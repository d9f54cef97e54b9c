package models

// Session is the locally held proof of authentication. It is stored as JSON
// under a single key, so the tags are part of the storage format.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	Role     Role   `json:"role"`
}

// LoginResponse is what /api/auth/login answers with; other fields are ignored.
type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

func (s Session) DisplayName() string {
	if s.Username == "" {
		return "Admin"
	}
	return s.Username
}
