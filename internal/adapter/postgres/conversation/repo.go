// Package conversation implements the assistant conversation repository.
package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create starts a new conversation.
func (r *Repo) Create(ctx context.Context, c domain.Conversation) (domain.Conversation, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO ava_conversations (id, user_id, assistant_type)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		c.ID, postgres.UUIDPtrToPg(c.UserID), c.AssistantType,
	).Scan(&c.CreatedAt)
	if err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", c.ID)
	}
	return c, nil
}

// GetByID returns one conversation.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Conversation, error) {
	var (
		c      domain.Conversation
		userID pgtype.UUID
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, user_id, assistant_type, created_at FROM ava_conversations WHERE id = $1`, id,
	).Scan(&c.ID, &userID, &c.AssistantType, &c.CreatedAt)
	if err != nil {
		return domain.Conversation{}, postgres.MapError(err, "conversation", id)
	}
	c.UserID = postgres.PgToUUIDPtr(userID)
	return c, nil
}

// AppendMessage adds a message to a conversation. An unknown conversation
// returns domain.ErrNotFound.
func (r *Repo) AppendMessage(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO ava_messages (id, conversation_id, role, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		m.ID, m.ConversationID, string(m.Role), m.Content,
	).Scan(&m.CreatedAt)
	if err != nil {
		return domain.ChatMessage{}, postgres.MapError(err, "conversation", m.ConversationID)
	}
	return m, nil
}

// ListMessages returns the whole conversation history, oldest first.
func (r *Repo) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.ChatMessage, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, conversation_id, role, content, created_at
		 FROM ava_messages
		 WHERE conversation_id = $1
		 ORDER BY created_at, id`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("conversation.ListMessages: %w", err)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChatMessage, error) {
		var (
			m    domain.ChatMessage
			role string
		)
		err := row.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &m.CreatedAt)
		m.Role = domain.MessageRole(role)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("conversation.ListMessages scan: %w", err)
	}
	return msgs, nil
}
