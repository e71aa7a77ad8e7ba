package middleware

import (
	"net/http"
	"strings"

	"github.com/kceleski/ava-care-compass/internal/auth"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth resolves the caller from a bearer token. Requests without a token pass
// through anonymously; a present but invalid token is rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithCaller(r.Context(), id.UserID, ctxutil.SourceToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenOnly marks each request so that user ids supplied by the client are
// ignored and only a bearer token identifies the caller.
func TokenOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(ctxutil.WithTokenOnly(r.Context())))
	})
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
