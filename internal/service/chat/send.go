package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/assistant"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
	"github.com/kceleski/ava-care-compass/pkg/flight"
)

// sendTimeout bounds a shared turn once it no longer belongs to one request.
const sendTimeout = 90 * time.Second

// SendOutput is the assistant's reply to one turn.
type SendOutput struct {
	Message        string
	ConversationID uuid.UUID
	Assistant      assistant.Persona
}

// Send appends the user's message to the conversation (creating one when no
// id is given), asks the model for a reply over the full history and stores
// the reply. Identical turns from the same signed-in user arriving
// concurrently are answered once.
func (s *Service) Send(ctx context.Context, input SendInput) (SendOutput, error) {
	if err := input.Validate(); err != nil {
		return SendOutput{}, err
	}

	userID := ctxutil.OptionalUserID(ctx)
	message := strings.TrimSpace(input.Message)

	// Anonymous turns are never shared between callers.
	if userID == nil {
		return s.send(ctx, nil, input.ConversationID, message)
	}

	conv := "new"
	if input.ConversationID != nil {
		conv = input.ConversationID.String()
	}

	key := userID.String() + "|" + conv + "|" + message
	out, _, err := flight.Do(ctx, &s.group, key, sendTimeout, func(ctx context.Context) (SendOutput, error) {
		return s.send(ctx, userID, input.ConversationID, message)
	})
	if err != nil {
		return SendOutput{}, err
	}
	return out, nil
}

func (s *Service) send(ctx context.Context, userID, conversationID *uuid.UUID, message string) (SendOutput, error) {
	convID, err := s.resolveConversation(ctx, userID, conversationID)
	if err != nil {
		return SendOutput{}, err
	}

	if _, err := s.conversations.AppendMessage(ctx, domain.ChatMessage{
		ConversationID: convID,
		Role:           domain.MessageRoleUser,
		Content:        message,
	}); err != nil {
		return SendOutput{}, fmt.Errorf("append user message: %w", err)
	}

	history, err := s.conversations.ListMessages(ctx, convID)
	if err != nil {
		return SendOutput{}, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]provider.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, provider.Message{Role: m.Role, Content: m.Content})
	}

	persona := assistant.SelectPersona(message)

	reply, err := s.generator.Complete(ctx, promptFor(persona), msgs)
	if err != nil {
		return SendOutput{}, fmt.Errorf("generate reply: %w", err)
	}

	if _, err := s.conversations.AppendMessage(ctx, domain.ChatMessage{
		ConversationID: convID,
		Role:           domain.MessageRoleAssistant,
		Content:        reply,
	}); err != nil {
		return SendOutput{}, fmt.Errorf("append assistant message: %w", err)
	}

	if err := s.analytics.Record(ctx, domain.AnalyticsEvent{
		UserID:    userID,
		EventType: domain.EventAvaChatInteraction,
		Metadata: map[string]any{
			"conversation_id": convID.String(),
			"message_length":  utf8.RuneCountInString(message),
			"response_length": utf8.RuneCountInString(reply),
		},
	}); err != nil {
		s.log.WarnContext(ctx, "record analytics failed",
			slog.String("event", domain.EventAvaChatInteraction),
			slog.String("error", err.Error()),
		)
	}

	return SendOutput{Message: reply, ConversationID: convID, Assistant: persona}, nil
}

// resolveConversation returns the id to append to. A conversation owned by
// another user is reported as not found.
func (s *Service) resolveConversation(ctx context.Context, userID, conversationID *uuid.UUID) (uuid.UUID, error) {
	if conversationID == nil {
		created, err := s.conversations.Create(ctx, domain.Conversation{
			UserID:        userID,
			AssistantType: domain.AssistantTypeCareAdvisor,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("create conversation: %w", err)
		}
		s.log.InfoContext(ctx, "conversation created", slog.String("conversation_id", created.ID.String()))
		return created.ID, nil
	}

	existing, err := s.conversations.GetByID(ctx, *conversationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get conversation: %w", err)
	}
	if existing.UserID != nil && (userID == nil || *userID != *existing.UserID) {
		return uuid.Nil, fmt.Errorf("get conversation: %w", domain.ErrNotFound)
	}
	return existing.ID, nil
}
