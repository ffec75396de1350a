package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

type stubUserService struct {
	registerFn    func(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error)
	meFn          func(ctx context.Context, principal ports.Principal) (*domain.User, error)
	changePassFn  func(ctx context.Context, principal ports.Principal, in ports.ChangePasswordInput) error
	updateFn      func(ctx context.Context, principal ports.Principal, in ports.UpdateProfileInput) error
	roleRequestFn func(ctx context.Context, principal ports.Principal, newRole string) (ports.RoleRequestOutcome, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Me(ctx context.Context, principal ports.Principal) (*domain.User, error) {
	return s.meFn(ctx, principal)
}

func (s *stubUserService) ChangePassword(ctx context.Context, principal ports.Principal, in ports.ChangePasswordInput) error {
	return s.changePassFn(ctx, principal, in)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, principal ports.Principal, in ports.UpdateProfileInput) error {
	return s.updateFn(ctx, principal, in)
}

func (s *stubUserService) RequestRoleChange(ctx context.Context, principal ports.Principal, newRole string) (ports.RoleRequestOutcome, error) {
	return s.roleRequestFn(ctx, principal, newRole)
}

const registerBody = `{
	"username": "dave",
	"email": "dave@example.com",
	"first_name": "Dave",
	"last_name": "Miller",
	"password": "opensesame1",
	"phone_number": "5550003333"
}`

func TestUserCreate_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
			if in.Username != "dave" || in.Email != "dave@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 1, Username: in.Username, Role: domain.RoleB2C, IsActive: true}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users", registerBody)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "user registration successful" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestUserCreate_ShortPassword(t *testing.T) {
	handler := NewUserHandler(&stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return nil, nil
		},
	})

	body := strings.Replace(registerBody, "opensesame1", "short", 1)
	c, _ := newTestContext(t, http.MethodPost, "/users", body)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserMe(t *testing.T) {
	stub := &stubUserService{
		meFn: func(_ context.Context, principal ports.Principal) (*domain.User, error) {
			return &domain.User{ID: principal.ID, Username: principal.Username, Role: principal.Role}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	setPrincipal(c, 7, "dave", domain.RoleB2C)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "dave" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if _, leaked := resp["hashed_password"]; leaked {
		t.Fatalf("password digest must not be serialized")
	}
}

func TestNewRoleRequest_Submitted(t *testing.T) {
	stub := &stubUserService{
		roleRequestFn: func(_ context.Context, principal ports.Principal, newRole string) (ports.RoleRequestOutcome, error) {
			if newRole != domain.RoleClient {
				t.Fatalf("unexpected role: %q", newRole)
			}
			return ports.RoleRequestSubmitted, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/new_role_request", `{"new_role_requested":"client"}`)
	setPrincipal(c, 7, "dave", domain.RoleB2C)

	if err := handler.NewRoleRequest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "submitted for approval") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestNewRoleRequest_SameRoleNoop(t *testing.T) {
	stub := &stubUserService{
		roleRequestFn: func(context.Context, ports.Principal, string) (ports.RoleRequestOutcome, error) {
			return ports.RoleRequestNoop, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/new_role_request", `{"new_role_requested":"client"}`)
	setPrincipal(c, 7, "dave", domain.RoleClient)

	if err := handler.NewRoleRequest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "already assigned") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestNewRoleRequest_UnknownRolePropagates(t *testing.T) {
	stub := &stubUserService{
		roleRequestFn: func(context.Context, ports.Principal, string) (ports.RoleRequestOutcome, error) {
			return "", domain.ErrUnknownRole
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/new_role_request", `{"new_role_requested":"superuser"}`)
	setPrincipal(c, 7, "dave", domain.RoleB2C)

	if err := handler.NewRoleRequest(c); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}
