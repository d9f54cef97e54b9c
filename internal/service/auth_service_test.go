package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/models"
	"sasyak-admin/internal/session"
)

func TestLoginStoresSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	s := h.login(t)
	if s.Token == "" || s.Username != "Admin User" || s.Role != models.RoleAdmin {
		t.Fatalf("session = %+v", s)
	}
	stored, ok := h.sessions.Current(ctx)
	if !ok || stored != s {
		t.Fatalf("stored = %+v, %v", stored, ok)
	}
	if c, ok := session.Claims(stored); !ok || c.Role != string(models.RoleAdmin) {
		t.Fatalf("claims = %+v, %v", c, ok)
	}
	if n, _ := h.notes.Last(); n.Title != "Login successful" {
		t.Fatalf("notification = %+v", n)
	}

	req, _ := h.srv.LastRequest()
	if req.Path != "/api/auth/login" || req.Header.Get("Authorization") != "" {
		t.Fatalf("login request = %s auth=%q", req.Path, req.Header.Get("Authorization"))
	}
}

func TestBearerTokenFollowsSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.srv.Seed(models.User{Name: "Maya Patel", Email: "maya@sasyak.test", Role: models.RoleManager})

	s := h.login(t)
	managers, err := h.users.ListByRole(ctx, models.RoleManager)
	if err != nil {
		t.Fatal(err)
	}
	if len(managers) != 1 || managers[0].Name != "Maya Patel" {
		t.Fatalf("managers = %+v", managers)
	}
	req, _ := h.srv.LastRequest()
	if got := req.Header.Get("Authorization"); got != "Bearer "+s.Token {
		t.Fatalf("Authorization = %q", got)
	}

	if err := h.auth.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if h.cleared != 1 {
		t.Fatalf("clear hook ran %d times", h.cleared)
	}
	if h.sessions.IsAuthenticated(ctx) {
		t.Fatal("still authenticated after logout")
	}

	_, err = h.users.ListByRole(ctx, models.RoleManager)
	var rerr *apiclient.RemoteError
	if !errors.As(err, &rerr) || rerr.Status != http.StatusUnauthorized {
		t.Fatalf("after logout err = %v", err)
	}
	req, _ = h.srv.LastRequest()
	if _, sent := req.Header["Authorization"]; sent {
		t.Fatalf("Authorization sent after logout: %q", req.Header.Get("Authorization"))
	}
}

func TestLoginRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.auth.Login(ctx, adminEmail, "wrong")
	var rerr *apiclient.RemoteError
	if !errors.As(err, &rerr) || rerr.Message != "Invalid email or password" {
		t.Fatalf("err = %v", err)
	}
	if h.sessions.IsAuthenticated(ctx) {
		t.Fatal("session stored after failed login")
	}
	if n, _ := h.notes.Last(); n.Variant != models.VariantDestructive || n.Description != "Invalid email or password" {
		t.Fatalf("notification = %+v", n)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	h := newHarness(t)
	for _, c := range [][2]string{{"", "x"}, {"  ", "x"}, {adminEmail, ""}} {
		if _, err := h.auth.Login(context.Background(), c[0], c[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err = %v", c[0], c[1], err)
		}
	}
	if n := len(h.srv.Requests()); n != 0 {
		t.Fatalf("%d requests sent", n)
	}
}
