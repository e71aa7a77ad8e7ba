package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Register creates an account and signs it in. A taken email reports
// ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Result, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return Result{}, fmt.Errorf("auth.Register hash password: %w", err)
	}

	u, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return Result{}, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return Result{}, fmt.Errorf("auth.Register: %w", err)
	}

	res, err := s.issueToken(u)
	if err != nil {
		return Result{}, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", u.ID.String()))
	return res, nil
}
