package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/domain"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

type stubValidator struct {
	validation *domain.Validation
	err        error
	lastToken  string
}

func (s *stubValidator) ValidateSession(_ context.Context, token string) (*domain.Validation, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.validation, nil
}

func newTestApp(validator SessionValidator, guards ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.SendStatus(fiberErr.Code)
			}
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})

	handlers := append([]fiber.Handler{NewMiddleware(validator).Handle}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "principal missing")
		}
		return c.JSON(fiber.Map{"kind": string(principal.Kind), "actorId": principal.ActorID})
	})
	app.Get("/protected", handlers...)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func doRequest(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("perform request: %v", err)
	}
	return resp
}

func TestMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		validator     *stubValidator
		wantStatus    int
	}{
		{
			name:          "valid bearer token",
			authorization: "Bearer tok-1",
			validator:     &stubValidator{validation: &domain.Validation{ActorKind: domain.ActorKindAdmin, ActorID: "a1"}},
			wantStatus:    http.StatusOK,
		},
		{
			name:          "missing header",
			authorization: "",
			validator:     &stubValidator{},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
			validator:     &stubValidator{},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unknown session",
			authorization: "Bearer tok-1",
			validator:     &stubValidator{err: domain.ErrSessionNotFound},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "expired session",
			authorization: "Bearer tok-1",
			validator:     &stubValidator{err: domain.ErrSessionExpired},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "store failure",
			authorization: "Bearer tok-1",
			validator:     &stubValidator{err: domain.ErrStoreUnavailable},
			wantStatus:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.validator)
			resp := doRequest(t, app, tt.authorization)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestMiddleware_RoleGuards(t *testing.T) {
	admin := &stubValidator{validation: &domain.Validation{ActorKind: domain.ActorKindAdmin, ActorID: "a1"}}
	driver := &stubValidator{validation: &domain.Validation{ActorKind: domain.ActorKindDriver, ActorID: "d1"}}

	tests := []struct {
		name       string
		validator  *stubValidator
		guard      fiber.Handler
		wantStatus int
	}{
		{name: "admin passes admin guard", validator: admin, guard: RequireAdmin(), wantStatus: http.StatusOK},
		{name: "driver blocked by admin guard", validator: driver, guard: RequireAdmin(), wantStatus: http.StatusForbidden},
		{name: "driver passes driver guard", validator: driver, guard: RequireDriver(), wantStatus: http.StatusOK},
		{name: "admin blocked by driver guard", validator: admin, guard: RequireDriver(), wantStatus: http.StatusForbidden},
		{name: "admin passes authenticated guard", validator: admin, guard: RequireAuthenticated(), wantStatus: http.StatusOK},
		{name: "driver passes authenticated guard", validator: driver, guard: RequireAuthenticated(), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.validator, tt.guard)
			resp := doRequest(t, app, "Bearer tok-1")
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		token, ok := BearerToken(c)
		return c.JSON(fiber.Map{"token": token, "ok": ok})
	})

	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{header: "Bearer abc", wantToken: "abc", wantOK: true},
		{header: "bearer abc", wantToken: "abc", wantOK: true},
		{header: "Bearer ", wantOK: false},
		{header: "Bearer", wantOK: false},
		{header: "Token abc", wantOK: false},
		{header: "", wantOK: false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("perform request: %v", err)
		}
		var body struct {
			Token string `json:"token"`
			OK    bool   `json:"ok"`
		}
		decodeBody(t, resp, &body)
		if body.OK != tt.wantOK || body.Token != tt.wantToken {
			t.Errorf("header %q: got (%q, %v), want (%q, %v)", tt.header, body.Token, body.OK, tt.wantToken, tt.wantOK)
		}
	}
}
