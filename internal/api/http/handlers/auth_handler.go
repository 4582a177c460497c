package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/auth"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// AuthHandler exposes login, logout and token verification endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.auth.LoginAdmin(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.loginFailure(c, err)
	}

	return c.JSON(dto.LoginResponse{
		Success:  true,
		Token:    result.Token,
		UserType: string(result.ActorKind),
		AdminID:  result.ActorID,
		Message:  "login successful",
	})
}

// DriverLogin handles POST /api/driver/login.
func (h *AuthHandler) DriverLogin(c *fiber.Ctx) error {
	var req dto.DriverLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Phone == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "phone and password required")
	}

	result, err := h.auth.LoginDriver(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return h.loginFailure(c, err)
	}

	return c.JSON(dto.LoginResponse{
		Success:  true,
		Token:    result.Token,
		UserType: string(result.ActorKind),
		DriverID: result.ActorID,
		Message:  "login successful",
	})
}

// Verify handles GET /api/admin/verify for both actor kinds.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token, ok := auth.BearerToken(c)
	if !ok {
		return apperrors.NewUnauthorized("bearer token required")
	}

	validation, err := h.auth.ValidateSession(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return apperrors.NewUnauthorized("session invalid or expired")
		}
		return apperrors.MapError(err)
	}

	resp := dto.VerifyResponse{Valid: true, UserType: string(validation.ActorKind)}
	switch validation.ActorKind {
	case domain.ActorKindAdmin:
		resp.AdminID = validation.ActorID
	case domain.ActorKindDriver:
		resp.DriverID = validation.ActorID
	}
	return c.JSON(resp)
}

// Logout handles POST /api/admin/logout. Acknowledged regardless of
// whether the token existed; logout is idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	_ = c.BodyParser(&req)

	token := req.Token
	if token == "" {
		token, _ = auth.BearerToken(c)
	}
	if token != "" {
		if _, err := h.auth.Logout(c.UserContext(), token); err != nil {
			return apperrors.MapError(err)
		}
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// ChangePassword handles PUT /api/admin/password for the authenticated
// administrator.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current and new password required")
	}

	if err := h.auth.ChangeAdminPassword(c.UserContext(), principal.ActorID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid credentials",
			})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "password updated"})
}

// loginFailure conflates all credential failures into one 401 response;
// store failures surface as 500 without detail.
func (h *AuthHandler) loginFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Status(http.StatusUnauthorized).JSON(dto.LoginResponse{
			Success: false,
			Message: "invalid credentials",
		})
	}
	return apperrors.MapError(err)
}
