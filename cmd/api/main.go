// Package main is the entrypoint for the Ngon API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ngonapp/ngon/internal/auth"
	"github.com/ngonapp/ngon/internal/cache"
	"github.com/ngonapp/ngon/internal/config"
	"github.com/ngonapp/ngon/internal/handler"
	"github.com/ngonapp/ngon/internal/metrics"
	"github.com/ngonapp/ngon/internal/middleware"
	"github.com/ngonapp/ngon/internal/repository"
	"github.com/ngonapp/ngon/internal/server"
	"github.com/ngonapp/ngon/internal/service"
	"github.com/ngonapp/ngon/internal/store"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	st, err := store.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error(
			"failed to connect to MongoDB",
			slog.String("error", sanitizeError(err, cfg.MongoURI)),
			slog.String("mongo_uri", redactURL(cfg.MongoURI)),
		)
		os.Exit(1)
	}
	logger.Info("connected to MongoDB", "database", cfg.MongoDB)

	if err := st.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to Redis")

	// Initialize metrics
	registry := prometheus.NewRegistry()
	recorder := metrics.NewCollector(registry)

	// Initialize repositories
	accounts := repository.NewAccounts(st)
	recipes := repository.NewRecipes(st)
	posts := repository.NewPosts(st)

	// Initialize services
	hasher := auth.NewHasher(auth.Params{
		Time:    cfg.Argon2Time,
		Memory:  cfg.Argon2Memory,
		Threads: cfg.Argon2Threads,
	})
	searchService := service.NewSearchService(posts, recipes)
	statsService := service.NewStatsService(accounts, recipes, posts)
	accountService := service.NewAccountService(accounts, hasher)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(st, cacheClient)
	searchHandler := handler.NewSearchHandler(searchService, logger, recorder)
	statsHandler := handler.NewStatsHandler(statsService, logger, recorder)
	accountHandler := handler.NewAccountHandler(accountService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, searchHandler, statsHandler, accountHandler, cacheClient, registry, recorder, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("mongodb", st.Close)
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	searchHandler *handler.SearchHandler,
	statsHandler *handler.StatsHandler,
	accountHandler *handler.AccountHandler,
	cacheClient *cache.Cache,
	registry *prometheus.Registry,
	recorder metrics.Recorder,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Metrics(recorder))
	r.Use(maxBodySize(cfg.MaxRequestBodySize))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	// Health and operational endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	// Root info endpoint
	r.Get("/", h.Hello)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitSearchEnabled,
		RPS:     cfg.RateLimitSearchRPS,
		Burst:   cfg.RateLimitSearchBurst,
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/admin/stats", statsHandler.Stats)
		r.With(middleware.RateLimitIP(rateLimitCfg)).Get("/search", searchHandler.Search)
		r.Get("/users/{id}", accountHandler.Get)
		r.Put("/user/update/{id}", accountHandler.Update)
		r.Put("/user/change-password/{id}", accountHandler.ChangePassword)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// maxBodySize caps request body reads at n bytes.
func maxBodySize(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return msg
}
