package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/platform/security"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const msgBadCredentials = "invalid username or password"

// Session is a signed-in user with the token that proves it.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AccountService handles signup, login and session resolution.
type AccountService struct {
	users     ports.UserRepository
	passwords *security.Passwords
	sessions  *security.Sessions
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// AccountServiceConfig contains the dependencies of an AccountService.
type AccountServiceConfig struct {
	Users     ports.UserRepository
	Passwords *security.Passwords
	Sessions  *security.Sessions
	Metrics   *telemetry.Metrics
	Logger    *slog.Logger
}

// NewAccountService creates an account service. Users and Sessions are
// required; Passwords defaults to the standard bcrypt cost.
func NewAccountService(cfg AccountServiceConfig) *AccountService {
	if cfg.Users == nil {
		panic("app: user repository is required")
	}
	if cfg.Sessions == nil {
		panic("app: session signer is required")
	}

	passwords := cfg.Passwords
	if passwords == nil {
		passwords = security.NewPasswords(security.DefaultBcryptCost)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		users:     cfg.Users,
		passwords: passwords,
		sessions:  cfg.Sessions,
		metrics:   cfg.Metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Signup creates a regular, active account.
func (s *AccountService) Signup(ctx context.Context, fields domain.SignupFields) (*domain.User, error) {
	fields = fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(fields.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     fields.Username,
		Email:        fields.Email,
		DateOfBirth:  fields.DateOfBirth,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, domain.NewValidationError("username", conflict.Reason)
		}
		return nil, err
	}

	s.metrics.Mutation("user", "create")
	s.logger.InfoContext(ctx, "account created",
		slog.Uint64("user_id", u.ID), slog.String("username", u.Username))

	return u, nil
}

// Login checks credentials and issues a session token.
func (s *AccountService) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			s.passwords.Decoy(password)
			s.metrics.Login(false)
			return nil, domain.NewUnauthorizedError(msgBadCredentials)
		}
		return nil, err
	}

	if !s.passwords.Check(u.PasswordHash, password) {
		s.metrics.Login(false)
		s.logger.InfoContext(ctx, "login rejected", slog.String("username", username))
		return nil, domain.NewUnauthorizedError(msgBadCredentials)
	}

	if !u.IsActive {
		s.metrics.Login(false)
		return nil, domain.NewUnauthorizedError("account is disabled")
	}

	now := s.now().UTC()
	u.LastLogin = &now

	if s.passwords.NeedsRehash(u.PasswordHash) {
		if hash, err := s.passwords.Hash(password); err == nil {
			u.PasswordHash = hash
		}
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	token, expires, err := s.sessions.Issue(u.ID, u.Username, u.IsSuperuser)
	if err != nil {
		return nil, err
	}

	s.metrics.Login(true)
	s.logger.InfoContext(ctx, "login succeeded",
		slog.Uint64("user_id", u.ID), slog.Bool("superuser", u.IsSuperuser))

	return &Session{User: u, Token: token, ExpiresAt: expires}, nil
}

// Authenticate resolves a session token to a current, active user. The user
// is read from the store so demotions and deactivations apply immediately.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil, domain.NewUnauthorizedError(err.Error())
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, domain.NewUnauthorizedError(err.Error())
	}

	u, err := s.users.Get(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("account no longer exists")
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, domain.NewUnauthorizedError("account is disabled")
	}

	logging.Trace(ctx, s.logger, "session resolved", slog.Uint64("user_id", u.ID))

	return u, nil
}

// CreateSuperuser creates a superuser, or promotes and resets the password
// of an existing account with the same username.
func (s *AccountService) CreateSuperuser(ctx context.Context, username, email, password string) (*domain.User, error) {
	fields := domain.SignupFields{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
	}.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(fields.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByUsername(ctx, fields.Username)
	switch {
	case err == nil:
		existing.PasswordHash = hash
		existing.IsSuperuser = true
		existing.IsActive = true
		if fields.Email != "" {
			existing.Email = fields.Email
		}

		if err := s.users.Update(ctx, existing); err != nil {
			return nil, err
		}

		s.metrics.Mutation("user", "update")
		s.logger.InfoContext(ctx, "account promoted to superuser", slog.Uint64("user_id", existing.ID))

		return existing, nil
	case !domain.IsNotFound(err):
		return nil, err
	}

	u := &domain.User{
		Username:     fields.Username,
		Email:        fields.Email,
		PasswordHash: hash,
		IsSuperuser:  true,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.metrics.Mutation("user", "create")
	s.logger.InfoContext(ctx, "superuser created", slog.Uint64("user_id", u.ID))

	return u, nil
}

// Page returns a keyset page of users for the admin listing.
func (s *AccountService) Page(ctx context.Context, afterID uint64, limit int) ([]domain.User, error) {
	return s.users.Page(ctx, afterID, limit)
}
