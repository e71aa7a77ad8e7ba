package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kceleski/ava-care-compass/internal/service/chat"
)

type chatService interface {
	Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error)
}

// ChatHandler serves the assistant chat endpoint.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversationId"`
	UserID         string  `json:"userId"`
}

type chatResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
	Assistant      string `json:"assistant"`
}

// Send handles POST /ava-chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	convID, err := optionalUUID("conversationId", req.ConversationID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Send(ctx, chat.SendInput{Message: req.Message, ConversationID: convID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Message:        out.Message,
		ConversationID: out.ConversationID.String(),
		Assistant:      out.Assistant.String(),
	})
}
