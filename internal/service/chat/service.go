// Package chat implements multi-turn conversations with the care advisor.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

type conversationRepo interface {
	Create(ctx context.Context, c domain.Conversation) (domain.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Conversation, error)
	AppendMessage(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.ChatMessage, error)
}

type textGenerator interface {
	Complete(ctx context.Context, system string, history []provider.Message) (string, error)
}

type analyticsRecorder interface {
	Record(ctx context.Context, e domain.AnalyticsEvent) error
}

// Service handles chat turns.
type Service struct {
	conversations conversationRepo
	generator     textGenerator
	analytics     analyticsRecorder
	log           *slog.Logger

	group singleflight.Group
}

// NewService creates a new chat service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	generator textGenerator,
	analytics analyticsRecorder,
) *Service {
	return &Service{
		conversations: conversations,
		generator:     generator,
		analytics:     analytics,
		log:           log.With("service", "chat"),
	}
}
