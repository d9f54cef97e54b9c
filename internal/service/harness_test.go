package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/apitest"
	"sasyak-admin/internal/models"
	"sasyak-admin/internal/notify"
	"sasyak-admin/internal/repository"
	"sasyak-admin/internal/repository/remote"
	"sasyak-admin/internal/session"
	"sasyak-admin/internal/storage"
)

const (
	adminEmail    = "admin@sasyak.test"
	adminPassword = "s3cret"
)

type harness struct {
	srv      *apitest.Server
	sessions *session.Manager
	notes    *notify.Recorder
	users    repository.UserRepository
	auth     *AuthService
	cleared  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{srv: apitest.New(t, apitest.Options{}), notes: &notify.Recorder{}}
	h.srv.AddAccount("Admin User", adminEmail, adminPassword, models.RoleAdmin)
	h.sessions = session.New(storage.NewMemory(), zerolog.Nop(), session.WithOnClear(func() { h.cleared++ }))

	api := apiclient.New(h.srv.URL, h.sessions, apiclient.WithNotifier(h.notes))
	h.users = remote.NewUserRepo(api)
	h.auth = NewAuthService(api, h.sessions, h.notes, zerolog.Nop())
	return h
}

func (h *harness) login(t *testing.T) models.Session {
	t.Helper()
	s, err := h.auth.Login(context.Background(), adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}
