package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/analytics"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/contact"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/conversation"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/facility"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/favorite"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/intake"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/reference"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/search"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/timeline"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/user"
	"github.com/kceleski/ava-care-compass/internal/adapter/provider/llm"
	"github.com/kceleski/ava-care-compass/internal/adapter/provider/serper"
	"github.com/kceleski/ava-care-compass/internal/auth"
	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/metrics"
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

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	facilityRepo := facility.New(pool)
	searchRepo := search.New(pool)
	timelineRepo := timeline.New(pool)
	referenceRepo := reference.New(pool)
	contactRepo := contact.New(pool)
	favoriteRepo := favorite.New(pool)
	conversationRepo := conversation.New(pool)
	intakeRepo := intake.New(pool)
	analyticsRepo := analytics.New(pool)
	txManager := postgres.NewTxManager(pool)

	// External providers.
	placesClient := serper.NewClient(cfg.Serper, logger)
	llmClient := llm.NewClient(cfg.LLM, logger)

	m := metrics.New(prometheus.NewRegistry())
	m.WatchPool(pool)

	// Services.
	placesService := placesearch.NewService(logger, cfg.Search, placesClient, llmClient, searchRepo, analyticsRepo, m)
	chatService := chatsvc.NewService(logger, conversationRepo, llmClient, analyticsRepo)
	facilityService := facilitysvc.NewService(logger, facilityRepo, analyticsRepo, cfg.Search.FacilityLimit)
	favoriteService := favoritesvc.NewService(logger, favoriteRepo, analyticsRepo)
	costService := costsvc.NewService(logger, referenceRepo)
	timelineService := timelinesvc.NewService(logger, referenceRepo, timelineRepo, txManager)
	contactService := contactsvc.NewService(logger, referenceRepo, contactRepo)
	intakeService := intakesvc.NewService(logger, intakeRepo)

	// Accounts need a signing secret; without one there is no auth surface.
	var (
		jwtManager  *auth.JWTManager
		authHandler *rest.AuthHandler
	)
	if cfg.Auth.Enabled() {
		jwtManager = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		authService := authsvc.NewService(logger, user.New(pool), jwtManager, cfg.Auth)
		authHandler = rest.NewAuthHandler(authService, logger)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, Version),
		Chat:     rest.NewChatHandler(chatService, logger),
		Favorite: rest.NewFavoriteHandler(favoriteService, logger),
		Facility: rest.NewFacilityHandler(facilityService, logger),
		Places:   rest.NewPlacesHandler(placesService, logger),
		Cost:     rest.NewCostHandler(costService, logger),
		Timeline: rest.NewTimelineHandler(timelineService, logger),
		Contact:  rest.NewContactHandler(contactService, logger),
		Intake:   rest.NewIntakeHandler(intakeService, logger),
		Auth:     authHandler,
		Metrics:  m.Handler(),
	}, rest.Limits{
		Search: limiter.Limit("search", cfg.RateLimit.SearchPerMinute),
		Chat:   limiter.Limit("chat", cfg.RateLimit.ChatPerMinute),
		Auth:   limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
	})

	if !cfg.Auth.Enabled() {
		logger.Warn("accounts and bearer token validation disabled")
	}
	if !cfg.Auth.TrustClientUserID {
		logger.Info("client-supplied user ids ignored, bearer tokens only")
	}
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(!cfg.Auth.TrustClientUserID, middleware.TokenOnly),
		middleware.When(cfg.Auth.Enabled(), middleware.Auth(jwtManager)),
		// Metrics sits next to the mux so the matched route pattern is visible.
		middleware.Metrics(m),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	return shutdown(srv, placesService, cfg.Server.ShutdownTimeout, logger)
}

type backgroundTasks interface {
	Wait(ctx context.Context) error
}

// shutdown stops accepting requests, then waits for in-flight summary tasks
// within the same deadline.
func shutdown(srv *http.Server, tasks backgroundTasks, timeout time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	if err := tasks.Wait(ctx); err != nil {
		logger.Warn("background tasks did not finish", slog.String("error", err.Error()))
	}

	logger.Info("shutdown complete")
	return nil
}
