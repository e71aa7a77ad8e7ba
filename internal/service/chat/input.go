package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// MaxMessageLength bounds a single user message, in characters.
const MaxMessageLength = 4000

// SendInput is one user turn.
type SendInput struct {
	Message        string
	ConversationID *uuid.UUID
}

func (i SendInput) Validate() error {
	var errs []domain.FieldError

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	if i.ConversationID != nil && *i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversationId", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
