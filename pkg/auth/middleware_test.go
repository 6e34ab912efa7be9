package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tikket/tikket-server/pkg/user"
	"github.com/tikket/tikket-server/pkg/userstore"
)

// TODO: remove the mock impl and use mockery to generate mock

// MockUserStore is a mock implementation of userstore.Store
type MockUserStore struct {
	GetUserFunc           func(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
	UserExistsFunc        func(ctx context.Context, id string) (bool, error)
	GetSessionByTokenFunc func(ctx context.Context, token string) (*user.Session, error)
	CreateUserFunc        func(ctx context.Context, usr *user.User) error
	CreateSessionFunc     func(ctx context.Context, sess *user.Session) error
}

func (m *MockUserStore) GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, opts...)
	}
	return nil, userstore.ErrUserNotFound
}

func (m *MockUserStore) UserExists(ctx context.Context, id string) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockUserStore) GetSessionByToken(ctx context.Context, token string) (*user.Session, error) {
	if m.GetSessionByTokenFunc != nil {
		return m.GetSessionByTokenFunc(ctx, token)
	}
	return nil, userstore.ErrSessionNotFound
}

func (m *MockUserStore) CreateUser(ctx context.Context, usr *user.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, usr)
	}
	return nil
}

func (m *MockUserStore) CreateSession(ctx context.Context, sess *user.Session) error {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, sess)
	}
	return nil
}

var middlewareNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestMiddleware(users userstore.Store) *Middleware {
	m := NewMiddleware(users, nil, zap.NewNop())
	m.now = func() time.Time { return middlewareNow }
	return m
}

// echoUserID writes the resolved user id back so the test can observe it.
func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(userID))
	})
}

func TestRequireUser_ValidSession(t *testing.T) {
	users := &MockUserStore{
		GetSessionByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			if token != "session-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return &user.Session{
				ID:        "s1",
				Token:     token,
				UserID:    "user-1",
				ExpiresAt: middlewareNow.Add(time.Hour),
			}, nil
		},
	}
	handler := newTestMiddleware(users).RequireUser(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "user-1" {
		t.Fatalf("expected user-1 in context, got %q", rec.Body.String())
	}
}

func TestRequireUser_ExpiredSessionRejected(t *testing.T) {
	users := &MockUserStore{
		GetSessionByTokenFunc: func(ctx context.Context, token string) (*user.Session, error) {
			return &user.Session{
				ID:        "s1",
				Token:     token,
				UserID:    "user-1",
				ExpiresAt: middlewareNow.Add(-time.Minute),
			}, nil
		},
	}
	handler := newTestMiddleware(users).RequireUser(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireUser_MissingHeaderRejected(t *testing.T) {
	handler := newTestMiddleware(&MockUserStore{}).RequireUser(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireUser_UnknownTokenRejected(t *testing.T) {
	handler := newTestMiddleware(&MockUserStore{}).RequireUser(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		if got := bearerToken(req); got != tc.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
