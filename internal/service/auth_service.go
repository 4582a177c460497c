package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fastbite/delivery-service/internal/auth"
	"github.com/fastbite/delivery-service/internal/config"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// tokenInsertAttempts bounds the retry loop on session insert; a collision
// of 256-bit random tokens is not expected in practice.
const tokenInsertAttempts = 3

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ActorKind domain.ActorKind
	ActorID   string
	ExpiresAt time.Time
}

// AuthService coordinates credential verification, session issuance,
// validation, revocation and default-account bootstrap. It is stateless
// across calls; all durable state lives in the repositories.
type AuthService struct {
	admins   repository.AdminRepository
	drivers  repository.DriverRepository
	sessions repository.SessionRepository

	sessionTTL time.Duration
	bcryptCost int
	defaults   config.AuthConfig

	now func() time.Time
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AdminRepo   repository.AdminRepository
	DriverRepo  repository.DriverRepository
	SessionRepo repository.SessionRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		drivers:    deps.DriverRepo,
		sessions:   deps.SessionRepo,
		sessionTTL: cfg.SessionTTL(),
		bcryptCost: cfg.BcryptCost,
		defaults:   cfg,
		now:        time.Now,
	}
}

// LoginAdmin authenticates an administrator by email. Unknown email,
// inactive account and wrong password all produce the same
// domain.ErrInvalidCredentials, so responses carry no enumeration signal.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if !admin.Active || !auth.VerifyPassword(admin.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.createSession(ctx, domain.ActorKindAdmin, admin.ID)
}

// LoginDriver authenticates a driver by phone number, with the same
// conflated failure mode as LoginAdmin.
func (s *AuthService) LoginDriver(ctx context.Context, phone, password string) (*LoginResult, error) {
	driver, err := s.drivers.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup driver: %w", err)
	}
	if !driver.Active || !auth.VerifyPassword(driver.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.createSession(ctx, domain.ActorKindDriver, driver.ID)
}

// ValidateSession resolves a bearer token to its actor. An expired record
// is deleted best-effort so the store stays self-cleaning; the deletion
// failing does not change the outcome. There is no TTL renewal.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.Validation, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.ExpiredAt(s.now()) {
		_, _ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrSessionExpired
	}
	return &domain.Validation{ActorKind: session.ActorKind, ActorID: session.ActorID}, nil
}

// Logout revokes a session and reports whether one existed. Revoking an
// already-revoked token is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Delete(ctx, token)
}

// ChangeAdminPassword rotates an administrator's password after
// verifying the current one. A wrong current password reports
// domain.ErrInvalidCredentials. Existing sessions stay valid until
// they expire or are revoked.
func (s *AuthService) ChangeAdminPassword(ctx context.Context, adminID, current, updated string) error {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(admin.PasswordHash, current) {
		return domain.ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(updated, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}
	return s.admins.UpdatePassword(ctx, admin.ID, hash)
}

// HashPassword hashes a plaintext secret for credential provisioning
// flows (driver and admin CRUD) so they never persist plaintext.
func (s *AuthService) HashPassword(plain string) (string, error) {
	return auth.HashPassword(plain, s.bcryptCost)
}

// CreateDefaultAdmin provisions the well-known admin account when absent.
// Idempotent: an existing record, including its stored hash, is left
// untouched. Must complete before the service accepts traffic.
func (s *AuthService) CreateDefaultAdmin(ctx context.Context) error {
	hash, err := auth.HashPassword(s.defaults.DefaultAdminPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &domain.AdminUser{
		Name:         s.defaults.DefaultAdminName,
		Email:        s.defaults.DefaultAdminEmail,
		PasswordHash: hash,
		Active:       true,
	}
	if _, err := s.admins.CreateIfAbsent(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	return nil
}

// CreateDefaultDriver provisions the well-known driver account when absent.
func (s *AuthService) CreateDefaultDriver(ctx context.Context) error {
	hash, err := auth.HashPassword(s.defaults.DefaultDriverPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default driver password: %w", err)
	}

	driver := &domain.Driver{
		Name:         s.defaults.DefaultDriverName,
		Phone:        s.defaults.DefaultDriverPhone,
		PasswordHash: hash,
		VehicleType:  domain.VehicleMotorbike,
		Available:    true,
		Active:       true,
	}
	if _, err := s.drivers.CreateIfAbsent(ctx, driver); err != nil {
		return fmt.Errorf("create default driver: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(ctx context.Context, kind domain.ActorKind, actorID string) (*LoginResult, error) {
	var lastErr error
	for attempt := 0; attempt < tokenInsertAttempts; attempt++ {
		token, err := auth.GenerateToken()
		if err != nil {
			return nil, err
		}

		issued := s.now()
		session := &domain.Session{
			Token:     token,
			ActorKind: kind,
			ActorID:   actorID,
			IssuedAt:  issued,
			ExpiresAt: issued.Add(s.sessionTTL),
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			if errors.Is(err, domain.ErrTokenExists) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("persist session: %w", err)
		}

		return &LoginResult{
			Token:     token,
			ActorKind: kind,
			ActorID:   actorID,
			ExpiresAt: session.ExpiresAt,
		}, nil
	}
	return nil, fmt.Errorf("persist session: %w", lastErr)
}
