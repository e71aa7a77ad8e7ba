package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kceleski/ava-care-compass/internal/config"
)

// exposedHeaders are response headers browser clients may read.
const exposedHeaders = RequestIDHeader + ", Retry-After"

type corsPolicy struct {
	anyOrigin bool
	origins   map[string]struct{}
	cfg       config.CORSConfig
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{origins: make(map[string]struct{}), cfg: cfg}
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.anyOrigin = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

// allowOrigin returns the value for Access-Control-Allow-Origin, or "".
// Credentialed requests never receive "*", so the origin is echoed instead.
func (p corsPolicy) allowOrigin(origin string) string {
	if p.anyOrigin && !p.cfg.AllowCredentials {
		return "*"
	}
	if origin == "" {
		return ""
	}
	if _, ok := p.origins[origin]; ok || p.anyOrigin {
		return origin
	}
	return ""
}

// CORS sets cross-origin headers for the browser client and answers
// preflight requests without reaching the router.
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if allowed := p.allowOrigin(r.Header.Get("Origin")); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if allowed != "*" {
					h.Add("Vary", "Origin")
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
