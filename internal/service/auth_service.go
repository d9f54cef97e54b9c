package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/apiclient"
	"sasyak-admin/internal/models"
	"sasyak-admin/internal/notify"
	"sasyak-admin/internal/repository/remote"
	"sasyak-admin/internal/session"
)

var ErrInvalidCredentials = errors.New("email and password are required")

type AuthService struct {
	api      remote.Doer
	sessions *session.Manager
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewAuthService(api remote.Doer, sessions *session.Manager, n notify.Notifier, l zerolog.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, notifier: n, log: l.With().Str("component", "auth").Logger()}
}

// Login posts the credentials and, on success, stores the session. Remote
// rejections come back as *apiclient.RemoteError.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	var resp models.LoginResponse
	in := map[string]string{"email": email, "password": password}
	if err := a.api.Do(ctx, http.MethodPost, "/api/auth/login", in, &resp, apiclient.Anonymous()); err != nil {
		return models.Session{}, err
	}

	s := models.Session{
		Username: resp.Name,
		Email:    resp.Email,
		Token:    resp.Token,
		Role:     resp.Role,
	}
	if s.Username == "" {
		s.Username = email
	}
	if err := a.sessions.Set(ctx, s); err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	a.log.Info().Str("email", s.Email).Str("role", string(s.Role)).Msg("logged in")
	a.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDefault,
		Title:       "Login successful",
		Description: "Welcome to your dashboard!",
	})
	return s, nil
}

// Logout drops the stored session; the session manager's hook handles the
// redirect.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.log.Info().Msg("logged out")
	return nil
}

func (a *AuthService) Current(ctx context.Context) (models.Session, bool) {
	return a.sessions.Current(ctx)
}
