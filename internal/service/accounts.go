package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_account_service.go -package=mocks notes-api/internal/service AccountService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notes-api/internal/auth"
	"notes-api/internal/contextutil"
	"notes-api/internal/storage"
)

// TokenIssuer issues and validates bearer credentials.
type TokenIssuer interface {
	Generate(userID string) (string, error)
	UserID(token string) (string, error)
	TTL() time.Duration
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
	// CompareDummy costs the same as Compare and always fails.
	CompareDummy(password string) error
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresIn time.Duration
	User      storage.User
}

// AccountService is the user account layer. Returned users never carry a password hash.
type AccountService interface {
	// Register creates an account. A taken email fails with ErrConflict.
	Register(ctx context.Context, in RegisterInput) (*storage.User, error)
	// Authenticate fails with ErrInvalidCredentials for unknown emails and wrong passwords alike.
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	// VerifyToken returns the user id bound to token, or ErrUnauthorized.
	VerifyToken(ctx context.Context, token string) (string, error)
	// WhoAmI resolves token to its user, or ErrUnauthorized.
	WhoAmI(ctx context.Context, token string) (*storage.User, error)
	// Profile returns the authenticated caller's account, or ErrUnauthorized.
	Profile(ctx context.Context, userID string) (*storage.User, error)
	// PublicProfile returns any user's account, or ErrNotFound.
	PublicProfile(ctx context.Context, userID string) (*storage.User, error)
	ListUsers(ctx context.Context) ([]storage.User, error)
}

type accountService struct {
	users  storage.UserStore
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewAccountService creates a new AccountService.
func NewAccountService(users storage.UserStore, tokens TokenIssuer, hasher PasswordHasher) AccountService {
	return &accountService{users: users, tokens: tokens, hasher: hasher}
}

// Register validates input, hashes the password and stores the account.
func (s *accountService) Register(ctx context.Context, in RegisterInput) (*storage.User, error) {
	logger := contextutil.LoggerFromContext(ctx)

	switch {
	case strings.TrimSpace(in.FullName) == "":
		return nil, &ValidationError{Field: "fullName", Message: "Full Name is required"}
	case strings.TrimSpace(in.Email) == "":
		return nil, &ValidationError{Field: "email", Message: "Email is required"}
	case in.Password == "":
		return nil, &ValidationError{Field: "password", Message: "Password is required"}
	case len(in.Password) > auth.MaxPasswordBytes:
		return nil, &ValidationError{Field: "password", Message: fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes)}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, WrapError(err, "failed to register")
	}

	user := &storage.User{FullName: in.FullName, Email: in.Email, PasswordHash: hash}
	if err := s.users.Insert(ctx, user); err != nil {
		err = fromStore(err, "failed to register")
		if errors.Is(err, ErrConflict) {
			logger.InfoContext(ctx, "registration rejected: email in use")
		} else {
			logger.ErrorContext(ctx, "failed to insert user", "error", err)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return sanitize(user), nil
}

// Authenticate checks credentials and issues a token.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if email == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Message: "Email and password are required"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		_ = s.hasher.CompareDummy(password)
		logger.InfoContext(ctx, "login failed")
		return nil, ErrInvalidCredentials
	case err != nil:
		logger.ErrorContext(ctx, "failed to load user for login", "error", err)
		return nil, fromStore(err, "failed to authenticate")
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			logger.ErrorContext(ctx, "failed to compare password", "error", err)
		}
		logger.InfoContext(ctx, "login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue token", "error", err)
		return nil, WrapError(err, "failed to authenticate")
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return &Session{Token: token, ExpiresIn: s.tokens.TTL(), User: *sanitize(user)}, nil
}

// VerifyToken validates token.
func (s *accountService) VerifyToken(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.UserID(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return userID, nil
}

// WhoAmI resolves token to the current account.
func (s *accountService) WhoAmI(ctx context.Context, token string) (*storage.User, error) {
	userID, err := s.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID)
}

// Profile returns the account of an authenticated caller.
func (s *accountService) Profile(ctx context.Context, userID string) (*storage.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fromStore(err, "failed to load profile")
	}
	return sanitize(user), nil
}

// PublicProfile returns any account by id.
func (s *accountService) PublicProfile(ctx context.Context, userID string) (*storage.User, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Message: "User ID is required"}
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "failed to load profile")
	}
	return sanitize(user), nil
}

// ListUsers returns every account.
func (s *accountService) ListUsers(ctx context.Context) ([]storage.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fromStore(err, "failed to list users")
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func sanitize(u *storage.User) *storage.User {
	out := *u
	out.PasswordHash = ""
	return &out
}
