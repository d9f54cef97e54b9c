package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/utils"
)

func loginToken(t *testing.T, s *Server, email, password string) string {
	t.Helper()
	resp, err := http.Post(s.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"email":"`+email+`","password":"`+password+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	var out models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out.Token
}

func get(t *testing.T, url, token string) int {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestAdminRoutesNeedAdminToken(t *testing.T) {
	s := New(t, Options{})
	s.AddAccount("Admin", "admin@sasyak.in", "pw-admin", models.RoleAdmin)
	s.AddAccount("Mohan", "mohan@sasyak.in", "pw-mgr", models.RoleManager)

	if got := get(t, s.URL+"/api/admin/users", ""); got != http.StatusUnauthorized {
		t.Errorf("no token: %d", got)
	}
	if got := get(t, s.URL+"/api/admin/users", "garbage"); got != http.StatusUnauthorized {
		t.Errorf("bad token: %d", got)
	}
	if got := get(t, s.URL+"/api/admin/users", loginToken(t, s, "mohan@sasyak.in", "pw-mgr")); got != http.StatusForbidden {
		t.Errorf("manager token: %d", got)
	}
	if got := get(t, s.URL+"/api/admin/users", loginToken(t, s, "admin@sasyak.in", "pw-admin")); got != http.StatusOK {
		t.Errorf("admin token: %d", got)
	}
}

func TestHealthAndRecording(t *testing.T) {
	s := New(t, Options{})
	if got := get(t, s.URL+"/healthz", ""); got != http.StatusOK {
		t.Fatalf("healthz: %d", got)
	}
	last, ok := s.LastRequest()
	if !ok || last.Path != "/healthz" || last.Method != http.MethodGet {
		t.Fatalf("last request = %+v", last)
	}
	if len(s.Requests()) != 1 {
		t.Fatalf("requests = %d", len(s.Requests()))
	}
}

func TestSeedAssignsIDs(t *testing.T) {
	s := New(t, Options{})
	a := s.Seed(models.User{Name: "A", Email: "a@x", Role: models.RoleEmployee})
	b := s.Seed(models.User{Name: "B", Email: "b@x", Role: models.RoleEmployee})
	if a.ID == 0 || b.ID <= a.ID {
		t.Fatalf("ids = %d, %d", a.ID, b.ID)
	}
}

func TestGateStoresClaims(t *testing.T) {
	tok, err := utils.SignJWT("k", utils.NewClaims(3, "admin@sasyak.in", string(models.RoleAdmin), time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	var seen *utils.Claims
	h := Gate("k", models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == nil || seen.Email != "admin@sasyak.in" {
		t.Fatalf("claims = %+v", seen)
	}
}

func TestRecovererAnswersJSON(t *testing.T) {
	h := Recoverer(zerolog.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), `"message":"Internal server error"`) {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCORSOrigin(t *testing.T) {
	s := New(t, Options{Origin: "https://admin.sasyak.in"})

	req, _ := http.NewRequest(http.MethodGet, s.URL+"/healthz", nil)
	req.Header.Set("Origin", "https://admin.sasyak.in")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://admin.sasyak.in" {
		t.Fatalf("allow origin = %q", got)
	}

	req.Header.Set("Origin", "https://elsewhere.example")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}
