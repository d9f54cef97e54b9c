// Package apitest runs an in-memory stand-in for the remote admin service so
// client code can be exercised end to end.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/utils"
)

type Options struct {
	Secret    string          // JWT signing secret; defaults to "test-secret"
	RateLimit int             // requests per minute per IP; 0 disables
	Origin    string          // browser origin allowed by CORS; empty disables
	Log       *zerolog.Logger // panics are logged here; nil discards
}

type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type account struct {
	user models.User
	hash string
}

type Server struct {
	*httptest.Server

	secret    string
	log       zerolog.Logger
	passwords utils.Passwords

	mu       sync.Mutex
	accounts map[int64]*account
	nextID   int64
	requests []Recorded
}

// New starts a server and closes it when t finishes.
func New(t testing.TB, opts Options) *Server {
	t.Helper()
	if opts.Secret == "" {
		opts.Secret = "test-secret"
	}
	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}
	s := &Server{
		secret:    opts.Secret,
		log:       log,
		passwords: utils.Passwords{Cost: bcrypt.MinCost},
		accounts:  map[int64]*account{},
		nextID:    1,
	}
	s.Server = httptest.NewServer(s.routes(opts))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(s.record)
	r.Use(Recoverer(s.log))
	if opts.Origin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{opts.Origin},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		}))
	}
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
	}

	r.Get("/healthz", health())
	r.Post("/api/auth/login", s.login())

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(Gate(s.secret, models.RoleAdmin))

		r.Get("/", s.listUsers())
		r.Post("/", s.createUser())
		r.Get("/by-role/{role}", s.listByRole())
		r.Get("/by-role/{role}/paged", s.listByRolePaged())
		r.Get("/manager/{managerId}", s.listByManager())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getUser())
			r.Put("/", s.updateUser())
			r.Delete("/", s.deleteUser())
			r.Put("/assign-manager/{managerId}", s.assignManager())
			r.Put("/remove-manager", s.removeManager())
		})
	})
	return r
}

// AddAccount registers someone who can log in. Hashing uses the minimum
// bcrypt cost to keep tests fast.
func (s *Server) AddAccount(name, email, password string, role models.Role) models.User {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		panic(err)
	}
	return s.insert(models.User{Name: name, Email: email, Role: role}, hash)
}

// Seed adds a user without credentials and returns it with its id.
func (s *Server) Seed(u models.User) models.User { return s.insert(u, "") }

func (s *Server) insert(u models.User, hash string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.accounts[u.ID] = &account{user: u, hash: hash}
	return u
}

// Requests returns everything received so far, in order.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

func (s *Server) LastRequest() (Recorded, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// people lists non-admin users ordered by id. Caller holds mu.
func (s *Server) people(keep func(models.User) bool) []models.User {
	out := []models.User{}
	for _, a := range s.accounts {
		if a.user.Role == models.RoleAdmin || !keep(a.user) {
			continue
		}
		out = append(out, a.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
