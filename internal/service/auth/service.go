// Package auth registers accounts and signs callers in with email and
// password, issuing the bearer tokens the auth middleware validates.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kceleski/ava-care-compass/internal/auth"
	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type tokenSigner interface {
	Sign(id auth.Identity, ttl time.Duration) (string, error)
}

// Service implements account operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	signer tokenSigner
	cfg    config.AuthConfig
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, signer tokenSigner, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		signer: signer,
		cfg:    cfg,
	}
}

// Result is returned by Register and Login.
type Result struct {
	AccessToken string
	ExpiresAt   time.Time
	User        domain.User
}

func (s *Service) issueToken(u domain.User) (Result, error) {
	expires := time.Now().Add(s.cfg.AccessTokenTTL)
	token, err := s.signer.Sign(auth.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, s.cfg.AccessTokenTTL)
	if err != nil {
		return Result{}, fmt.Errorf("sign access token: %w", err)
	}
	return Result{AccessToken: token, ExpiresAt: expires, User: u}, nil
}
