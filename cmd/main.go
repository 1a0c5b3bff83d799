package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"

	"predict-lab/auth"
	"predict-lab/backend"
	"predict-lab/http"
	"predict-lab/internal"
	"predict-lab/observability"
	"predict-lab/policy"
	"predict-lab/repositories"
	"predict-lab/services"
	"predict-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories
	projectRepository, err := repositories.NewProjectRepository(db, log, config.ProjectCacheSize)
	if err != nil {
		return fmt.Errorf("project repository: %w", err)
	}
	predictionRepository := repositories.NewPredictionRepository(db, log)

	// 4. Event publisher: Redis stream when configured, no-op otherwise.
	var publisher sink.IEventPublisher = sink.NewNopPublisher(log)
	if config.PublishEnabled {
		if config.RedisAddr == "" {
			return fmt.Errorf("PUBLISH_ENABLED requires REDIS_ADDR")
		}
		redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		defer func() {
			log.Info("Closing Redis client...")
			_ = redisClient.Close()
		}()
		publisher = sink.NewStreamPublisher(redisClient, log)
	}

	// 5. Core services
	monitoring := observability.NewMonitoringManager(log)
	executor := backend.NewExecutor(log, config.RemoteTimeout)
	predictionService := services.NewPredictionService(
		executor,
		predictionRepository,
		publisher,
		policy.NewSelector(policy.DefaultRand()),
		monitoring,
		log,
		services.PublishConfig{
			Enabled: config.PublishEnabled,
			Stream:  config.PublishStream,
			Timeout: config.PublishTimeout,
		},
	)
	projectService := services.NewProjectService(projectRepository, log)

	// 6. HTTP API
	issuer := auth.NewTokenIssuer(config.AuthTokenSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(issuer, config.APIKeyHash)
	handler := http.NewHandler(projectService, predictionService, authService, monitoring, issuer, log)
	server := http.NewServer(http.ServerConfig{
		Host:    config.Host,
		Port:    config.Port,
		Timeout: config.HTTPTimeout,
	}, handler, log)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Use an error channel to capture Start() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting prediction server", "address", server.Addr(), "at", time.Now().UTC())
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")

	return nil
}
