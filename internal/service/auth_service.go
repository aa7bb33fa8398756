package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"blognest-backend/internal/auth"
	"blognest-backend/internal/domain"
	"blognest-backend/internal/logger"
	"blognest-backend/internal/metrics"
	"blognest-backend/internal/repository"
	"blognest-backend/internal/validator"
)

// AuthService registers users, verifies credentials and validates tokens.
type AuthService struct {
	users     repository.UserRepository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenManager
	validator *validator.Validator
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	v *validator.Validator,
) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register validates input, rejects taken handles, stores the bcrypt hash of
// the password and returns the new user with a token.
func (s *AuthService) Register(ctx context.Context, input domain.Registration) (_ *AuthResult, err error) {
	defer func() { metrics.ObserveAuth("register", err) }()

	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)

	if err := s.validator.ValidateRegistration(&input); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, domain.NewConflict("user already exists")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store's unique indexes catch a concurrent registration.
	if err := s.users.Create(ctx, user); err != nil {
		if domain.IsConflict(err) {
			logger.WarnContext(ctx, "Registration lost a uniqueness race",
				slog.String("username", user.Username))
		}
		return nil, err
	}

	logger.WithUserID(user.ID).InfoContext(ctx, "User registered",
		slog.String("username", user.Username))

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same auth error.
func (s *AuthService) Login(ctx context.Context, input domain.Credentials) (_ *AuthResult, err error) {
	defer func() { metrics.ObserveAuth("login", err) }()

	input.Email = normalizeEmail(input.Email)
	if err := s.validator.ValidateCredentials(&input); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.NewAuth("invalid email or password")
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewAuth("invalid email or password")
	}

	return s.issue(user)
}

// Authenticate validates a bearer token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (_ domain.Identity, err error) {
	defer func() { metrics.ObserveAuth("authenticate", err) }()

	if token == "" {
		return domain.Identity{}, domain.NewAuth("not authorized, no token")
	}

	identity, err := s.tokens.Verify(token)
	if err != nil {
		logger.DebugContext(ctx, "Rejected bearer token", slog.String("error", err.Error()))
		return domain.Identity{}, domain.NewAuth("not authorized, token failed")
	}

	return identity, nil
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
