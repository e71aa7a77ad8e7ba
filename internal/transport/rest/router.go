package rest

import (
	"net/http"

	"github.com/kceleski/ava-care-compass/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Chat     *ChatHandler
	Favorite *FavoriteHandler
	Facility *FacilityHandler
	Places   *PlacesHandler
	Cost     *CostHandler
	Timeline *TimelineHandler
	Contact  *ContactHandler
	Intake   *IntakeHandler
	Auth     *AuthHandler // nil when accounts are disabled
	Metrics  http.Handler
}

// Limits are per-client rate limits for the endpoints that call paid
// providers or check passwords.
type Limits struct {
	Search middleware.Middleware
	Chat   middleware.Middleware
	Auth   middleware.Middleware
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers, l Limits) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.Handle("POST /ava-chat", l.Chat(http.HandlerFunc(h.Chat.Send)))
	mux.HandleFunc("POST /manage-favorites", h.Favorite.Manage)
	mux.HandleFunc("POST /search-facilities", h.Facility.Search)
	mux.Handle("POST /serper-search", l.Search(http.HandlerFunc(h.Places.Search)))
	mux.HandleFunc("GET /search-results/{id}", h.Places.GetResult)

	mux.HandleFunc("GET /tools/care-types", h.Cost.CareTypes)
	mux.HandleFunc("POST /tools/cost-estimate", h.Cost.Estimate)
	mux.HandleFunc("POST /tools/timeline", h.Timeline.CreatePlan)
	mux.HandleFunc("GET /tools/timeline/{id}", h.Timeline.GetPlan)
	mux.HandleFunc("PATCH /tools/timeline/milestones/{id}", h.Timeline.SetMilestoneCompleted)
	mux.HandleFunc("GET /tools/emergency-contacts", h.Contact.List)
	mux.HandleFunc("POST /tools/emergency-contacts", h.Contact.Add)
	mux.HandleFunc("DELETE /tools/emergency-contacts/{id}", h.Contact.Delete)

	mux.HandleFunc("POST /intake", h.Intake.Submit)
	mux.HandleFunc("GET /intake/{id}", h.Intake.Get)

	if h.Auth != nil {
		mux.Handle("POST /auth/signup", l.Auth(http.HandlerFunc(h.Auth.Signup)))
		mux.Handle("POST /auth/login", l.Auth(http.HandlerFunc(h.Auth.Login)))
	}

	return mux
}
