package intake

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

func validate(s domain.IntakeSubmission) error {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"phone", s.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if s.Email != "" {
		if _, err := mail.ParseAddress(s.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}
	if s.MonthlyBudget != "" && !s.MonthlyBudget.IsValid() {
		errs = append(errs, domain.FieldError{Field: "monthlyBudget", Message: "invalid budget range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Submit validates and stores a completed intake form. The caller, when
// known, becomes the owner.
func (s *Service) Submit(ctx context.Context, sub domain.IntakeSubmission) (domain.IntakeSubmission, error) {
	if err := validate(sub); err != nil {
		return domain.IntakeSubmission{}, err
	}

	sub.ID = uuid.New()
	sub.UserID = ctxutil.OptionalUserID(ctx)

	saved, err := s.repo.Create(ctx, sub)
	if err != nil {
		return domain.IntakeSubmission{}, fmt.Errorf("create intake: %w", err)
	}

	s.log.InfoContext(ctx, "intake submitted",
		slog.String("intake_id", saved.ID.String()),
		slog.String("care_type", saved.CareType),
	)
	return saved, nil
}

// Get returns a stored submission. Submissions owned by another user are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.IntakeSubmission{}, fmt.Errorf("get intake: %w", err)
	}
	if !ctxutil.CanAccess(ctx, sub.UserID) {
		return domain.IntakeSubmission{}, domain.ErrNotFound
	}
	return sub, nil
}
