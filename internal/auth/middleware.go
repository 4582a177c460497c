package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/domain"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

const principalKey = "auth_principal"

// SessionValidator resolves a bearer token to an actor. Implemented by the
// authentication service; declared here so the middleware does not depend
// on the service package.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*domain.Validation, error)
}

// Principal represents the authenticated caller for the current request.
type Principal struct {
	Kind    domain.ActorKind
	ActorID string
}

// Middleware validates bearer tokens and loads principals into the request.
type Middleware struct {
	sessions SessionValidator
}

// NewMiddleware constructs middleware around a session validator.
func NewMiddleware(sessions SessionValidator) *Middleware {
	return &Middleware{sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, ok := BearerToken(c)
	if !ok {
		return apperrors.NewUnauthorized("missing or malformed authorization header")
	}

	validation, err := m.sessions.ValidateSession(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return apperrors.NewUnauthorized("session invalid or expired")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Kind: validation.ActorKind, ActorID: validation.ActorID})
	return c.Next()
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
