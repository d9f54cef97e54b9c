// Package session holds the signed-in identity in durable storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/storage"
	"sasyak-admin/internal/utils"
)

// Key is the single storage entry holding the session JSON.
const Key = "authUser"

var ErrEmptyToken = errors.New("session token is empty")

// ParseError means the stored entry is not valid session JSON. Load
// recovers from it by reporting no session.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "malformed stored session: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

type Manager struct {
	store   storage.Store
	log     zerolog.Logger
	onClear func()
}

type Option func(*Manager)

// WithOnClear sets the hook run after Clear, typically sending the user
// back to the login entry point.
func WithOnClear(fn func()) Option {
	return func(m *Manager) { m.onClear = fn }
}

func New(store storage.Store, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{store: store, log: log.With().Str("component", "session").Logger()}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Manager) Set(ctx context.Context, s models.Session) error {
	if s.Token == "" {
		return ErrEmptyToken
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, Key, string(b)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	m.log.Debug().Str("email", s.Email).Str("role", string(s.Role)).Msg("session stored")
	return nil
}

// Load returns the stored session. A malformed or tokenless entry counts as
// no session; only storage failures are errors.
func (m *Manager) Load(ctx context.Context) (models.Session, bool, error) {
	raw, found, err := m.store.Get(ctx, Key)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return models.Session{}, false, nil
	}
	s, err := decode(raw)
	if err != nil {
		m.log.Warn().Err(err).Msg("ignoring stored session")
		return models.Session{}, false, nil
	}
	return s, true, nil
}

// Current is Load with storage errors logged and treated as signed out.
func (m *Manager) Current(ctx context.Context) (models.Session, bool) {
	s, ok, err := m.Load(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("session unavailable")
		return models.Session{}, false
	}
	return s, ok
}

func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, ok := m.Current(ctx)
	return ok
}

func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Debug().Msg("session cleared")
	if m.onClear != nil {
		m.onClear()
	}
	return nil
}

// Claims decodes the token when it is a JWT. Opaque tokens report false.
func Claims(s models.Session) (*utils.Claims, bool) {
	c, err := utils.PeekJWT(s.Token)
	if err != nil {
		return nil, false
	}
	return c, true
}

func decode(raw string) (models.Session, error) {
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return models.Session{}, &ParseError{Err: err}
	}
	if s.Token == "" {
		return models.Session{}, &ParseError{Err: ErrEmptyToken}
	}
	return s, nil
}
