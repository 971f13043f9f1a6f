package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsecheck/pulsecheck/internal/auth"
	"github.com/pulsecheck/pulsecheck/internal/metrics"
	"github.com/pulsecheck/pulsecheck/internal/model"
	"github.com/pulsecheck/pulsecheck/internal/repository"
)

// Account errors.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailTaken       = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and password mismatch
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService handles sign-up and login.
type AccountService struct {
	store   UserStore
	tokens  *auth.Tokens
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(store UserStore, tokens *auth.Tokens, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   store,
		tokens:  tokens,
		metrics: recorder,
	}
}

// SignUp hashes the password and persists a new user.
// The returned user carries the stored hash; callers exposing it over the
// API must strip it.
func (s *AccountService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("sign up: %w", err)
	}

	s.metrics.IncUserSignedUp()

	return user, nil
}

// Login verifies credentials and issues a signed token embedding the user ID.
// Unknown email and password mismatch both return ErrInvalidCredentials;
// either way exactly one failure result is produced, and no token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailure()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return token, nil
}
