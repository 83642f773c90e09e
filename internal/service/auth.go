package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/vaultpass/passvault/internal/crypto"
	"github.com/vaultpass/passvault/internal/generator"
	"github.com/vaultpass/passvault/internal/model"
	"github.com/vaultpass/passvault/internal/repository"
)

var (
	ErrRegisterFieldsRequired = errors.New("username, email and password are required")
	ErrLoginFieldsRequired    = errors.New("email and password are required")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrWeakPassword           = errors.New("password must be at least 8 characters and contain uppercase, lowercase, digit and special character")
	ErrUserExists             = errors.New("user with this username or email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// UserStore is the persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateAuthHash(ctx context.Context, id int64, hash string) error
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	users  UserStore
	hasher *crypto.Hasher
	tokens *crypto.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.Hasher, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register validates and stores a new account.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return model.UserResponse{}, ErrRegisterFieldsRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return model.UserResponse{}, ErrInvalidEmail
	}
	if !isStrongMasterPassword(req.Password) {
		return model.UserResponse{}, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		AuthHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.UserResponse{}, ErrUserExists
		}
		return model.UserResponse{}, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return toUserResponse(user), nil
}

// Login authenticates a user and returns an access and refresh token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrLoginFieldsRequired
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.AuthHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(user.AuthHash) {
		s.rehash(ctx, user.ID, req.Password)
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user),
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.RefreshResponse, error) {
	claims, err := s.tokens.Validate(refreshToken, crypto.RefreshToken)
	if err != nil {
		return model.RefreshResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.RefreshResponse{}, crypto.ErrInvalidToken
		}
		return model.RefreshResponse{}, err
	}

	access, err := s.tokens.Issue(claims.UserID, crypto.AccessToken)
	if err != nil {
		return model.RefreshResponse{}, err
	}

	return model.RefreshResponse{AccessToken: access}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// rehash upgrades a stored hash to the current parameters. Failure only
// costs the upgrade, so it is logged and login proceeds.
func (s *AuthService) rehash(ctx context.Context, userID int64, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.users.UpdateAuthHash(ctx, userID, hash)
	}
	if err != nil {
		slog.Warn("rehashing master password failed", "user_id", userID, "error", err)
	}
}

// isStrongMasterPassword requires 8+ characters and all four character kinds.
func isStrongMasterPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	c := generator.Inspect(password)
	return c.Lower && c.Upper && c.Digit && c.Other
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
