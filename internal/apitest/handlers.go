package apitest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/utils"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func validRole(r models.Role) bool {
	switch r {
	case models.RoleEmployee, models.RoleSupervisor, models.RoleManager:
		return true
	}
	return false
}

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id, err == nil && id > 0
}

// POST /api/auth/login
func (s *Server) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		s.mu.Lock()
		var found *account
		for _, a := range s.accounts {
			if a.hash != "" && strings.EqualFold(a.user.Email, strings.TrimSpace(in.Email)) {
				found = a
				break
			}
		}
		s.mu.Unlock()
		if found == nil || !s.passwords.Matches(found.hash, in.Password) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		tok, err := utils.SignJWT(s.secret, utils.NewClaims(found.user.ID, found.user.Email, string(found.user.Role), 24*time.Hour))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":    found.user.ID,
			"name":  found.user.Name,
			"email": found.user.Email,
			"token": tok,
			"role":  found.user.Role,
		})
	}
}

// GET /api/admin/users
func (s *Server) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		users := s.people(func(models.User) bool { return true })
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, models.UserList{Employees: users})
	}
}

// GET /api/admin/users/{id}
func (s *Server) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		s.mu.Lock()
		a := s.accounts[id]
		s.mu.Unlock()
		if a == nil || a.user.Role == models.RoleAdmin {
			writeError(w, http.StatusNotFound, "User not found with id: "+strconv.FormatInt(id, 10))
			return
		}
		writeJSON(w, http.StatusOK, a.user)
	}
}

// checkManager reports a message when managerID does not name a manager.
// Caller holds mu.
func (s *Server) checkManager(managerID int64) string {
	m := s.accounts[managerID]
	if m == nil {
		return "Manager not found with id: " + strconv.FormatInt(managerID, 10)
	}
	if m.user.Role != models.RoleManager {
		return "Assigned manager must have role MANAGER"
	}
	return ""
}

// POST /api/admin/users
func (s *Server) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UserInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.TrimSpace(in.Email)
		if in.Name == "" || in.Email == "" {
			writeError(w, http.StatusBadRequest, "Name and email are required")
			return
		}
		if !validRole(in.Role) {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, a := range s.accounts {
			if strings.EqualFold(a.user.Email, in.Email) {
				writeError(w, http.StatusConflict, "Email already in use")
				return
			}
		}
		if in.ManagerID != nil {
			if msg := s.checkManager(*in.ManagerID); msg != "" {
				writeError(w, http.StatusBadRequest, msg)
				return
			}
		}
		u := models.User{
			ID:          s.nextID,
			Name:        in.Name,
			Email:       in.Email,
			Role:        in.Role,
			PhoneNumber: in.PhoneNumber,
			ManagerID:   in.ManagerID,
			TenantID:    in.TenantID,
		}
		s.nextID++
		s.accounts[u.ID] = &account{user: u}
		writeJSON(w, http.StatusCreated, u)
	}
}

// PUT /api/admin/users/{id}
func (s *Server) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		var in models.UserInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		a := s.accounts[id]
		if a == nil {
			writeError(w, http.StatusNotFound, "User not found with id: "+strconv.FormatInt(id, 10))
			return
		}
		if in.Role != "" && !validRole(in.Role) {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		if in.ManagerID != nil {
			if msg := s.checkManager(*in.ManagerID); msg != "" {
				writeError(w, http.StatusBadRequest, msg)
				return
			}
		}
		if in.Name != "" {
			a.user.Name = strings.TrimSpace(in.Name)
		}
		if in.Email != "" {
			a.user.Email = strings.TrimSpace(in.Email)
		}
		if in.Role != "" {
			a.user.Role = in.Role
		}
		if in.PhoneNumber != nil {
			a.user.PhoneNumber = in.PhoneNumber
		}
		if in.ManagerID != nil {
			a.user.ManagerID = in.ManagerID
		}
		if in.TenantID != nil {
			a.user.TenantID = in.TenantID
		}
		writeJSON(w, http.StatusOK, a.user)
	}
}

// DELETE /api/admin/users/{id}
// Answers in plain text; clients must not depend on the body.
func (s *Server) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.accounts[id] == nil {
			writeError(w, http.StatusNotFound, "User not found with id: "+strconv.FormatInt(id, 10))
			return
		}
		for _, a := range s.accounts {
			if a.user.ManagerID != nil && *a.user.ManagerID == id {
				writeError(w, http.StatusConflict, "Cannot delete manager with assigned employees")
				return
			}
		}
		delete(s.accounts, id)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("deleted"))
	}
}

// GET /api/admin/users/by-role/{role}
func (s *Server) listByRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := models.Role(chi.URLParam(r, "role"))
		if !validRole(role) {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		s.mu.Lock()
		users := s.people(func(u models.User) bool { return u.Role == role })
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, models.UserList{Employees: users})
	}
}

// GET /api/admin/users/by-role/{role}/paged?page=&size=
func (s *Server) listByRolePaged() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := models.Role(chi.URLParam(r, "role"))
		if !validRole(role) {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		page, perr := utils.QueryInt(r.URL.Query(), "page", 0)
		size, serr := utils.QueryInt(r.URL.Query(), "size", 10)
		if perr != nil || serr != nil || page < 0 || size <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid page request")
			return
		}

		s.mu.Lock()
		users := s.people(func(u models.User) bool { return u.Role == role })
		s.mu.Unlock()

		start := min(page*size, len(users))
		end := min(start+size, len(users))
		writeJSON(w, http.StatusOK, models.UserPage{
			Employees:   users[start:end],
			TotalItems:  len(users),
			TotalPages:  (len(users) + size - 1) / size,
			CurrentPage: page,
		})
	}
}

// PUT /api/admin/users/{id}/assign-manager/{managerId}
func (s *Server) assignManager() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		managerID, ok2 := pathID(r, "managerId")
		if !ok || !ok2 {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		a := s.accounts[id]
		if a == nil {
			writeError(w, http.StatusNotFound, "User not found with id: "+strconv.FormatInt(id, 10))
			return
		}
		if msg := s.checkManager(managerID); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		a.user.ManagerID = &managerID
		writeJSON(w, http.StatusOK, a.user)
	}
}

// PUT /api/admin/users/{id}/remove-manager
func (s *Server) removeManager() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		a := s.accounts[id]
		if a == nil {
			writeError(w, http.StatusNotFound, "User not found with id: "+strconv.FormatInt(id, 10))
			return
		}
		a.user.ManagerID = nil
		writeJSON(w, http.StatusOK, a.user)
	}
}

// GET /api/admin/users/manager/{managerId}
func (s *Server) listByManager() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managerID, ok := pathID(r, "managerId")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid manager id")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if msg := s.checkManager(managerID); msg != "" {
			writeError(w, http.StatusNotFound, msg)
			return
		}
		users := s.people(func(u models.User) bool {
			return u.ManagerID != nil && *u.ManagerID == managerID
		})
		writeJSON(w, http.StatusOK, models.UserList{Employees: users})
	}
}
