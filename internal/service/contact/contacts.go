package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

// Directory is the hotline list plus, for a known caller, their own contacts.
type Directory struct {
	Hotlines []domain.EmergencyContact
	Personal []domain.UserEmergencyContact
}

// Directory returns hotlines for everyone and personal contacts for the
// authenticated caller.
func (s *Service) Directory(ctx context.Context) (Directory, error) {
	hotlines, err := s.hotlines.ListHotlines(ctx)
	if err != nil {
		return Directory{}, fmt.Errorf("list hotlines: %w", err)
	}

	dir := Directory{Hotlines: hotlines, Personal: []domain.UserEmergencyContact{}}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return dir, nil
	}
	personal, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		return Directory{}, fmt.Errorf("list contacts: %w", err)
	}
	dir.Personal = personal
	return dir, nil
}

// Add stores a personal contact. Marking it primary leaves other primary
// contacts as they are.
func (s *Service) Add(ctx context.Context, input AddInput) (domain.UserEmergencyContact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserEmergencyContact{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.UserEmergencyContact{}, err
	}

	created, err := s.contacts.Create(ctx, domain.UserEmergencyContact{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Relationship: strings.TrimSpace(input.Relationship),
		Phone:        strings.TrimSpace(input.Phone),
		IsPrimary:    input.IsPrimary,
	})
	if err != nil {
		return domain.UserEmergencyContact{}, fmt.Errorf("create contact: %w", err)
	}

	s.log.InfoContext(ctx, "emergency contact added",
		slog.String("contact_id", created.ID.String()),
		slog.Bool("primary", created.IsPrimary),
	)
	return created, nil
}

// Delete removes one of the caller's contacts. Contacts of other users are
// reported as not found.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.contacts.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
