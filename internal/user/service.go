// internal/user/service.go
//
// Registration and login.  Thin CRUD glue: uniqueness checks, Argon2id
// hashing, and token issuance sit on top of the repository, nothing more.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yanizio/authd/internal/auth"
	"github.com/yanizio/authd/internal/metrics"
)

// Sentinel errors mapped to HTTP statuses in handler.go.
var (
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("account is disabled")
)

// Service carries the collaborators for the user endpoints.
type Service struct {
	repo   *Repository
	tokens *auth.TokenService
}

func NewService(db *sqlx.DB, tokens *auth.TokenService) *Service {
	return &Service{repo: NewRepository(db), tokens: tokens}
}

// Register creates an active account after uniqueness checks.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	taken, err := s.repo.UsernameTaken(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	taken, err = s.repo.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, req.Username, req.Email, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	return &RegisterResponse{ID: id, Username: req.Username, Email: req.Email}, nil
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	rec, err := s.repo.FindByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if rec == nil {
		metrics.LoginFailuresTotal.Inc()
		return nil, ErrInvalidCredentials
	}
	if rec.Status != statusActive {
		metrics.LoginFailuresTotal.Inc()
		return nil, ErrUserDisabled
	}

	ok, err := auth.VerifyPassword(req.Password, rec.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		metrics.LoginFailuresTotal.Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.Inc()
	return &LoginResponse{
		ID:        rec.ID,
		Username:  rec.Username,
		Email:     rec.Email,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}

// Profile loads the authenticated user's public fields.
func (s *Service) Profile(ctx context.Context, id int64) (*ProfileResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	return &ProfileResponse{ID: rec.ID, Username: rec.Username, Email: rec.Email}, nil
}
