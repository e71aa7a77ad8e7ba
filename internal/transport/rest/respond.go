package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// userIDHeader carries the caller id for clients that send neither a token
// nor a userId field.
const userIDHeader = "user-id"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is required")
		}
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// withCaller returns the request context carrying the caller id. A user
// resolved from the bearer token wins; otherwise the id supplied by the
// client in the body, or in the user-id header, is used unless the request
// is marked token-only.
func withCaller(r *http.Request, bodyUserID string) (context.Context, error) {
	ctx := r.Context()
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return ctx, nil
	}
	if !ctxutil.ClientIDsAllowed(ctx) {
		return ctx, nil
	}

	raw := strings.TrimSpace(bodyUserID)
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get(userIDHeader))
	}
	if raw == "" {
		return ctx, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError("userId", "invalid userId")
	}
	return ctxutil.WithUserID(ctx, id), nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func optionalUUID(field string, s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, domain.NewValidationError(field, fmt.Sprintf("invalid %s", field))
	}
	return &id, nil
}

func validationMessage(ve *domain.ValidationError) string {
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}
	return ve.Messages()
}

// handleError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, validationMessage(ve))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrProvider):
		attrs := []any{slog.String("error", err.Error())}
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			attrs = append(attrs, slog.String("provider", pe.Provider), slog.Int("upstream_status", pe.Status))
		}
		log.WarnContext(r.Context(), "provider error", attrs...)
		writeError(w, http.StatusBadGateway, "upstream provider error")
	case errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "request timed out", slog.String("error", err.Error()))
		writeError(w, http.StatusGatewayTimeout, "request timed out")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
