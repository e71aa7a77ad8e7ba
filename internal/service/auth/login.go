package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Login checks email and password and issues an access token. An unknown
// email and a wrong password both report ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (Result, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Result{}, domain.ErrUnauthorized
		}
		return Result{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return Result{}, domain.ErrUnauthorized
	}

	res, err := s.issueToken(u)
	if err != nil {
		return Result{}, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID.String()))
	return res, nil
}
