package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/config"
	"github.com/mwork/mwork-ads/internal/domain/advertisement"
	"github.com/mwork/mwork-ads/internal/domain/analytics"
	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/domain/performance"
	"github.com/mwork/mwork-ads/internal/domain/targeting"
	"github.com/mwork/mwork-ads/internal/middleware"
	"github.com/mwork/mwork-ads/internal/pkg/database"
	"github.com/mwork/mwork-ads/internal/pkg/jwt"
	pkgresponse "github.com/mwork/mwork-ads/internal/pkg/response"
	"github.com/mwork/mwork-ads/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting MWork Ads API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	verifier := jwt.NewVerifier(cfg.JWTSecret)

	var media storage.Storage = storage.Disabled{}
	if cfg.R2AccountID != "" {
		r2, err := storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create R2 storage")
		}
		media = r2
	} else {
		log.Warn().Msg("R2 not configured, media release disabled")
	}

	// ---------- Repositories ----------
	targetingRepo := targeting.NewRepository(db)
	campaignRepo := campaign.NewRepository(db)
	advertisementRepo := advertisement.NewRepository(db)
	performanceRepo := performance.NewRepository(db)

	// ---------- Services ----------
	targetingService := targeting.NewService(targetingRepo)
	campaignService := campaign.NewService(campaignRepo, targetingRepo, media)
	advertisementService := advertisement.NewService(advertisementRepo, campaignRepo, media)
	performanceService := performance.NewService(performanceRepo)
	analyticsService := analytics.NewService(campaignService, advertisementService, performanceService)

	recorder := performance.NewRecorder(redis, performanceRepo)
	flushWorker := performance.NewWorker(recorder, cfg.PerfFlushInterval)
	flushWorker.Start()
	defer flushWorker.Stop()

	// ---------- Handlers ----------
	targetingHandler := targeting.NewHandler(targetingService)
	campaignHandler := campaign.NewHandler(campaignService)
	advertisementHandler := advertisement.NewHandler(advertisementService)
	performanceHandler := performance.NewHandler(performanceService, recorder)
	analyticsHandler := analytics.NewHandler(analyticsService)

	authMiddleware := middleware.Auth(verifier)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1/ads", func(r chi.Router) {
		// Counter tracking is hit by ad placements, not the admin console
		r.Mount("/track", performanceHandler.TrackRoutes())

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RequireAdmin)

			r.Mount("/campaigns", campaignHandler.Routes())
			r.Mount("/advertisements", advertisementHandler.Routes())
			r.Mount("/campaignperformances", performanceHandler.Routes())
			r.Mount("/analytics", analyticsHandler.Routes())
			r.Mount("/", targetingHandler.Routes())
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
