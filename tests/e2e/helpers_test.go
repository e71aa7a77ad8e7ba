//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/analytics"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/contact"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/conversation"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/facility"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/favorite"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/intake"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/reference"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/search"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/testhelper"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/timeline"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/user"
	"github.com/kceleski/ava-care-compass/internal/app/seeder"
	authpkg "github.com/kceleski/ava-care-compass/internal/auth"
	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/metrics"
	"github.com/kceleski/ava-care-compass/internal/provider"
	authsvc "github.com/kceleski/ava-care-compass/internal/service/auth"
	chatsvc "github.com/kceleski/ava-care-compass/internal/service/chat"
	contactsvc "github.com/kceleski/ava-care-compass/internal/service/contact"
	costsvc "github.com/kceleski/ava-care-compass/internal/service/cost"
	facilitysvc "github.com/kceleski/ava-care-compass/internal/service/facility"
	favoritesvc "github.com/kceleski/ava-care-compass/internal/service/favorite"
	intakesvc "github.com/kceleski/ava-care-compass/internal/service/intake"
	"github.com/kceleski/ava-care-compass/internal/service/placesearch"
	timelinesvc "github.com/kceleski/ava-care-compass/internal/service/timeline"
	"github.com/kceleski/ava-care-compass/internal/transport/middleware"
	"github.com/kceleski/ava-care-compass/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Provider fakes.
// ---------------------------------------------------------------------------

type fakePlaces struct{}

func (fakePlaces) SearchPlaces(_ context.Context, query, _ string, num int) (provider.PlacesResult, error) {
	lat, lng, rating := 30.27, -97.74, 4.5
	places := []provider.PlaceResult{
		{Position: 1, Title: "Oak Meadow Senior Living", Address: "10 Oak St, Austin, TX 78701", Latitude: &lat, Longitude: &lng, Rating: &rating, Types: []string{"assisted living"}},
		{Position: 2, Title: "Riverbend Care Home", Address: "unknown"},
	}
	if num < len(places) {
		places = places[:num]
	}
	raw, _ := json.Marshal(map[string]any{"query": query, "count": len(places)})
	return provider.PlacesResult{Places: places, Raw: raw}, nil
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *fakeGenerator) Complete(_ context.Context, system string, history []provider.Message) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if len(history) == 0 {
		return "", nil
	}
	return "reply to: " + history[len(history)-1].Content, nil
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
	places *placesearch.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and seeded reference data.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	facilityRepo := facility.New(pool)
	referenceRepo := reference.New(pool)
	analyticsRepo := analytics.New(pool)

	ds, err := seeder.LoadDataset("")
	require.NoError(t, err)
	pipeline := seeder.NewPipeline(logger, referenceRepo, facilityRepo, txm, seeder.Config{})
	require.NoError(t, pipeline.Run(context.Background(), ds, nil))
	require.False(t, pipeline.HasErrors())

	m := metrics.New(prometheus.NewRegistry())
	gen := &fakeGenerator{}

	placesService := placesearch.NewService(logger, config.SearchConfig{
		DefaultType:    "assisted living",
		DefaultNum:     20,
		MaxResults:     20,
		SummaryPlaces:  5,
		ResponsePlaces: 10,
		SummaryTimeout: 10 * time.Second,
	}, fakePlaces{}, gen, search.New(pool), analyticsRepo, m)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = placesService.Wait(ctx)
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	jwtMgr := authpkg.NewJWTManager(testJWTSecret, testJWTIssuer)
	authService := authsvc.NewService(logger, user.New(pool), jwtMgr, config.AuthConfig{
		JWTSecret:        testJWTSecret,
		JWTIssuer:        testJWTIssuer,
		AccessTokenTTL:   time.Hour,
		PasswordHashCost: 4,
	})

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Chat:     rest.NewChatHandler(chatsvc.NewService(logger, conversation.New(pool), gen, analyticsRepo), logger),
		Favorite: rest.NewFavoriteHandler(favoritesvc.NewService(logger, favorite.New(pool), analyticsRepo), logger),
		Facility: rest.NewFacilityHandler(facilitysvc.NewService(logger, facilityRepo, analyticsRepo, 50), logger),
		Places:   rest.NewPlacesHandler(placesService, logger),
		Cost:     rest.NewCostHandler(costsvc.NewService(logger, referenceRepo), logger),
		Timeline: rest.NewTimelineHandler(timelinesvc.NewService(logger, referenceRepo, timeline.New(pool), txm), logger),
		Contact:  rest.NewContactHandler(contactsvc.NewService(logger, referenceRepo, contact.New(pool)), logger),
		Intake:   rest.NewIntakeHandler(intakesvc.NewService(logger, intake.New(pool)), logger),
		Auth:     rest.NewAuthHandler(authService, logger),
		Metrics:  m.Handler(),
	}, rest.Limits{
		Search: limiter.Limit("search", 1000),
		Chat:   limiter.Limit("chat", 1000),
		Auth:   limiter.Limit("auth", 1000),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "authorization,content-type",
			MaxAge:         86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Metrics(m),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
		places: placesService,
	}
}

// tokenFor signs an access token for a fresh user id.
func (ts *testServer) tokenFor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	token, err := ts.jwt.Sign(authpkg.Identity{UserID: id, Email: id.String() + "@example.com"}, time.Hour)
	require.NoError(t, err)
	return id, token
}

// do sends a JSON request and decodes the JSON response body into a map.
// A 204 response yields a nil map.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}
