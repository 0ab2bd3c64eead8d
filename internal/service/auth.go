package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"oxvocab/internal/domain"
	"oxvocab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	maxPasswordBytes  = 72
)

// TokenIssuer creates session tokens for authenticated users
type TokenIssuer interface {
	GenerateAccessToken(userID int64) (string, error)
}

// Session is what register and login hand back to the client
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService handles accounts, credentials and scores
type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	hashCost int
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, hashCost int, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		hashCost: hashCost,
		logger:   logger,
	}
}

// Register validates the credentials, creates the account and opens a session
func (s *AuthService) Register(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	switch n := utf8.RuneCountInString(username); {
	case n < MinUsernameLength:
		return nil, fmt.Errorf("%w: username must be at least %d characters long", domain.ErrValidation, MinUsernameLength)
	case n > MaxUsernameLength:
		return nil, fmt.Errorf("%w: username must be at most %d characters long", domain.ErrValidation, MaxUsernameLength)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes long", domain.ErrValidation, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username already exists", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return s.openSession(user)
}

// Login verifies the credentials and opens a session
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.openSession(user)
}

// Verify checks a username and password pair and returns the account
func (s *AuthService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
	}
	return user, nil
}

// User returns the account with the given id
func (s *AuthService) User(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// IncrementScore adds a non-negative delta to the user's score
func (s *AuthService) IncrementScore(ctx context.Context, userID int64, delta int) (*domain.User, error) {
	if delta < 0 {
		return nil, fmt.Errorf("%w: score increment must not be negative", domain.ErrValidation)
	}
	return s.userRepo.IncrementScore(ctx, userID, delta)
}

func (s *AuthService) openSession(user *domain.User) (*Session, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	return nil
}
