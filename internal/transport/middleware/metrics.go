package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics reports every request to obs, labelled by the matched route
// pattern. It must wrap the ServeMux directly so the pattern is visible.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveHTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
