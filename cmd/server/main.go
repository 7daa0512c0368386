package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"portfolio-api/internal/api"
	"portfolio-api/internal/core/ports"
	"portfolio-api/internal/core/service"
	mongodb "portfolio-api/internal/infrastructure/db/mongo"
	redisdb "portfolio-api/internal/infrastructure/db/redis"
	"portfolio-api/internal/infrastructure/memory"
	"portfolio-api/internal/infrastructure/store/jsonfile"
	"portfolio-api/internal/pkg/config"
	"portfolio-api/pkg/logger"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  cfg.IsProduction(),
		DataDir:        cfg.DataDir,
		UploadsDir:     cfg.UploadsDir,
		UploadMaxBytes: cfg.UploadMaxBytes,
	}

	// --- Storage ---
	store, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data store")
	}

	var projectRepo ports.ProjectRepository
	switch cfg.StorageDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		deps.Mongo = db
		projectRepo = mongodb.NewProjectRepository(db)
	default:
		projectRepo, err = jsonfile.NewProjectRepository(store)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open project store")
		}
	}

	// --- Token revocation ---
	var revoker ports.TokenRevoker
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() {
			_ = rdb.Close()
		}()
		deps.Redis = rdb
		revoker = redisdb.NewRevocationStore(rdb)
	} else {
		log.Warn().Msg("no REDIS_ADDR configured; token revocation is in-process only")
		revoker = memory.NewRevocationStore()
	}

	// --- Services ---
	uploads, err := service.NewUploadService(cfg.UploadsDir, cfg.UploadMaxBytes, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open uploads dir")
	}
	authService := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL, revoker, log)

	deps.Projects = service.NewProjectService(projectRepo, uploads, log)
	deps.Content = service.NewContentService(
		jsonfile.NewExperienceRepository(store),
		jsonfile.NewSkillRepository(store),
	)
	deps.Auth = authService
	deps.Verifier = authService
	deps.Uploads = uploads

	e := api.NewRouter(deps)

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("portfolio api listening")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
