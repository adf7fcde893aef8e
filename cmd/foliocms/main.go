// Package main is the entry point for the portfolio backend server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"foliocms/internal/auth"
	"foliocms/internal/cache"
	"foliocms/internal/config"
	"foliocms/internal/database"
	"foliocms/internal/handlers"
	"foliocms/internal/mail"
	"foliocms/internal/ratelimit"
	"foliocms/internal/router"
	"foliocms/internal/storage"
	"foliocms/internal/store"
)

// Contact form rate limit: 5 submissions per client IP per 15 minutes.
const (
	contactLimit  = 5
	contactWindow = 15 * time.Minute
)

// retentionSweepInterval is how often expired analytics events are purged.
const retentionSweepInterval = 24 * time.Hour

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	// Structured logger writing to stdout for container log collection.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the admin account (no-op if a user already exists).
	if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	// Contact form rate limiter: shared counters in Redis when configured,
	// per-process sliding window otherwise.
	var limiter ratelimit.Limiter
	if cfg.HasRedis() {
		redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient, contactLimit, contactWindow, "contact")
		slog.Info("redis rate limiter enabled", "host", cfg.RedisHost)
	} else {
		limiter = ratelimit.NewMemoryLimiter(contactLimit, contactWindow)
		slog.Warn("redis not configured, rate limit counters are per-process")
	}
	defer limiter.Stop()

	// SMTP delivery for the contact form. Optional: the endpoint degrades
	// to 503 without it.
	var sender mail.Sender
	if cfg.HasSMTP() {
		smtp, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		if err != nil {
			slog.Error("failed to initialize smtp sender", "error", err)
			os.Exit(1)
		}
		sender = smtp
		slog.Info("smtp delivery enabled", "host", cfg.SMTPHost)
	} else {
		slog.Warn("smtp not configured, contact form delivery disabled")
	}

	// Connect to S3-compatible object storage. Optional: the app runs without it.
	var storageClient *storage.Client
	if cfg.HasS3() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Token issuer for the admin cookie. Secure cookies outside development.
	tokens := auth.NewTokens(cfg.JWTSecret, !cfg.IsDev())

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	projectStore := store.NewProjectStore(db)
	experienceStore := store.NewExperienceStore(db)
	skillStore := store.NewSkillStore(db)
	toolStore := store.NewToolStore(db)
	softSkillStore := store.NewSoftSkillStore(db)
	siteContentStore := store.NewSiteContentStore(db)
	settingsStore := store.NewSettingsStore(db)
	analyticsStore := store.NewAnalyticsStore(db)
	mediaStore := store.NewMediaStore(db)

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Auth:        handlers.NewAuth(tokens, userStore),
		Projects:    handlers.NewProjects(projectStore),
		Experiences: handlers.NewExperiences(experienceStore),
		Skills:      handlers.NewSkills(skillStore),
		Tools:       handlers.NewTools(toolStore),
		SoftSkills:  handlers.NewSoftSkills(softSkillStore),
		Content:     handlers.NewContent(siteContentStore, settingsStore),
		Contact:     handlers.NewContact(settingsStore, analyticsStore, sender),
		Analytics:   handlers.NewAnalytics(analyticsStore, settingsStore, projectStore, tokens),
		Media:       handlers.NewMedia(mediaStore, storageClient),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, limiter, h)

	// Periodically purge analytics events past the configured retention.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go retentionSweep(sweepCtx, analyticsStore, settingsStore)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// retentionSweep deletes analytics events older than the retention window
// configured in the analytics settings. Runs once at startup and then on
// a fixed interval until the context is cancelled.
func retentionSweep(ctx context.Context, analytics *store.AnalyticsStore, settings *store.SettingsStore) {
	ticker := time.NewTicker(retentionSweepInterval)
	defer ticker.Stop()

	for {
		sweepOnce(analytics, settings)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func sweepOnce(analytics *store.AnalyticsStore, settings *store.SettingsStore) {
	cfg, err := settings.GetAnalytics()
	if err != nil {
		slog.Error("retention sweep: load settings", "error", err)
		return
	}

	retention := 90
	if cfg != nil && cfg.RetentionDays > 0 {
		retention = cfg.RetentionDays
	}

	cutoff := time.Now().AddDate(0, 0, -retention)
	deleted, err := analytics.DeleteOlderThan(cutoff)
	if err != nil {
		slog.Error("retention sweep: delete", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("retention sweep completed", "deleted", deleted, "retention_days", retention)
	}
}
