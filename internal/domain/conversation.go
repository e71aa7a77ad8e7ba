package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssistantTypeCareAdvisor is the assistant type recorded on chat conversations.
const AssistantTypeCareAdvisor = "care_advisor"

// Conversation is a persisted multi-turn chat with the assistant.
type Conversation struct {
	ID            uuid.UUID
	UserID        *uuid.UUID
	AssistantType string
	CreatedAt     time.Time
}

// ChatMessage is one append-only entry of a Conversation.
type ChatMessage struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           MessageRole
	Content        string
	CreatedAt      time.Time
}
