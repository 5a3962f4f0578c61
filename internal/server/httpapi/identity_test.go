package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dpavlenko/bloglist/internal/common"
	"github.com/dpavlenko/bloglist/internal/logging"
	"github.com/dpavlenko/bloglist/internal/server/auth"
	"github.com/dpavlenko/bloglist/internal/server/blogs"
	"github.com/dpavlenko/bloglist/internal/server/config"
	"github.com/dpavlenko/bloglist/internal/server/shared/db"
	"github.com/dpavlenko/bloglist/internal/server/users"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

const testSecret = "super-secret"

func newTestEnv(t *testing.T) (*Server, *users.Service, db.RepositoryManager) {
	t.Helper()

	m := db.NewInMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: testSecret, TokenValidity: time.Hour}
	us := users.NewService(m.Users(), cfg)
	bs := blogs.NewService(m.Blogs())

	s, err := NewServer("127.0.0.1:0", nopLogger{}, us, bs, testSecret)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}

	return s, us, m
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"absent", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"lowercase prefix", "bearer abc", "", false},
		{"no space", "Bearerabc", "", false},
		{"empty token", "Bearer ", "", false},
		{"ok", "Bearer tok-123", "tok-123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}
			got, ok := ExtractToken(h)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractToken(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolve_Anonymous(t *testing.T) {
	s, _, _ := newTestEnv(t)

	r := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	user, err := s.resolver.Resolve(r)
	if err != nil {
		t.Fatalf("anonymous request must not error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no identity, got %+v", user)
	}
}

func TestResolve_InvalidToken(t *testing.T) {
	s, _, _ := newTestEnv(t)

	r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	r.Header.Set("Authorization", "Bearer not-a-valid-jwt")

	_, err := s.resolver.Resolve(r)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolve_ValidToken_UnknownSubject(t *testing.T) {
	s, _, _ := newTestEnv(t)

	token, err := auth.GenerateToken("99999999-9999-9999-9999-999999999999", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = s.resolver.Resolve(r)
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResolve_ValidToken_ReturnsLiveUser(t *testing.T) {
	s, us, _ := newTestEnv(t)

	registered, err := us.Register(context.Background(), "alice", "Alice", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := auth.GenerateToken(registered.ID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	user, err := s.resolver.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

func TestRequireUser_MissingToken(t *testing.T) {
	s, _, _ := newTestEnv(t)

	handlerCalled := false
	h := s.requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/blogs", nil))

	if handlerCalled {
		t.Fatal("handler must not be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireUser_ValidToken_InjectsUser(t *testing.T) {
	s, us, _ := newTestEnv(t)

	registered, err := us.Register(context.Background(), "alice", "Alice", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	token, _, err := us.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	var gotID string
	h := s.requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := userFromContext(r.Context()); ok {
			gotID = u.ID
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gotID != registered.ID {
		t.Fatalf("user id not propagated: got %q want %q", gotID, registered.ID)
	}
}
