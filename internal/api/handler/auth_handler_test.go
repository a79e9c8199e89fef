package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-system/internal/core/domain"
	"github.com/storefront/catalog-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	activateFn func(ctx context.Context, username, email string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Activate(ctx context.Context, username, email string) (*domain.User, error) {
	return s.activateFn(ctx, username, email)
}

func newJSONContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:           "user-1",
				Username:     input.Username,
				Email:        input.Email,
				PasswordHash: "bcrypt-hash-value",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, "/auth/register",
		`{"username":"alice","password":"secret-pass","email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if success, _ := resp["success"].(bool); !success {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	user, ok := resp["data"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
	if strings.Contains(rec.Body.String(), "bcrypt-hash-value") {
		t.Fatal("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, "/auth/register",
		`{"username":"alice","password":"short","email":"alice@example.com"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthHandler_Register_PropagatesConflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, "/auth/register",
		`{"username":"alice","password":"secret-pass","email":"alice@example.com"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret-pass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Username: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, "/auth/login",
		`{"email":"alice@example.com","password":"secret-pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["token"] != "token123" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
}

func TestAuthHandler_Login_PropagatesInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, "/auth/login",
		`{"email":"alice@example.com","password":"bad-password"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Activate_Success(t *testing.T) {
	stub := &stubAuthService{
		activateFn: func(_ context.Context, username, email string) (*domain.User, error) {
			return &domain.User{Username: username, Email: email, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, "/users/activate",
		`{"username":"alice","email":"alice@example.com"}`)
	if err := h.Activate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Activate_NoMatch(t *testing.T) {
	stub := &stubAuthService{
		activateFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, "/users/activate",
		`{"username":"alice","email":"other@example.com"}`)
	err := h.Activate(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
