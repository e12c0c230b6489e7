package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/skylar-games/case-opener/internal/domain/entity"
	"github.com/skylar-games/case-opener/internal/domain/usecase/draw"
	ledgerUseCase "github.com/skylar-games/case-opener/internal/domain/usecase/ledger"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/handler"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/routes"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/clock"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/logger"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/random"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/storage"
	"github.com/skylar-games/case-opener/internal/infrastructure/config"
	"github.com/skylar-games/case-opener/internal/infrastructure/monitoring"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Connect to the durable store
	db, err := storage.Open(&storage.Config{
		Driver:          cfg.Storage.Driver,
		Path:            cfg.Storage.Path,
		Host:            cfg.Storage.Host,
		Port:            cfg.Storage.Port,
		Username:        cfg.Storage.Username,
		Password:        cfg.Storage.Password,
		Database:        cfg.Storage.Database,
		SSLMode:         cfg.Storage.SSLMode,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
		LogLevel:        cfg.Logger.Level,
	})
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{
			"driver": cfg.Storage.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = storage.Close(db) }()

	store, err := storage.NewGormStore(db, appLogger)
	if err != nil {
		appLogger.Error("Failed to prepare key-value store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Core adapters
	realClock := clock.New()
	randSource := random.New()

	// Load the account ledger from the store
	accountLedger, err := ledgerUseCase.New(
		context.Background(),
		store,
		realClock,
		appLogger,
		entity.CoinsToTenths(float64(cfg.Game.StartingBalance)),
	)
	if err != nil {
		appLogger.Error("Failed to load account ledger", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Draw engine and spin session
	engine := draw.NewEngine(entity.DefaultTiers(), randSource)
	session := draw.NewSession(accountLedger, engine, realClock, realClock, appLogger, draw.Config{
		BaseCost:       entity.CoinsToTenths(float64(cfg.Game.BaseCost)),
		MaxMultiplier:  cfg.Game.MaxMultiplier,
		RevealDuration: cfg.Game.RevealDuration,
	})
	session.OnSettle(monitoring.ObserveSettlement)

	// Initialize API handlers
	accountHandler := handler.NewAccountHandler(accountLedger, appLogger)
	caseHandler := handler.NewCaseHandler(session, appLogger)
	leaderboardHandler := handler.NewLeaderboardHandler(accountLedger, cfg.Game.LeaderboardLimit, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, accountHandler, caseHandler, leaderboardHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"storage":  cfg.Storage.Driver,
			"accounts": accountLedger.Size(),
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch cfg.Storage.Driver {
	case storage.DriverSQLite:
		if cfg.Storage.Path == "" {
			missing = append(missing, "storage.path")
		}
	case storage.DriverPostgres:
		if cfg.Storage.Host == "" {
			missing = append(missing, "storage.host")
		}
		if cfg.Storage.Database == "" {
			missing = append(missing, "storage.database")
		}
	default:
		return fmt.Errorf("invalid storage driver: %q, must be %q or %q",
			cfg.Storage.Driver, storage.DriverSQLite, storage.DriverPostgres)
	}

	if cfg.Game.BaseCost <= 0 {
		missing = append(missing, "game.baseCost")
	}
	if cfg.Game.MaxMultiplier <= 0 {
		missing = append(missing, "game.maxMultiplier")
	}
	if cfg.Game.RevealDuration <= 0 {
		missing = append(missing, "game.revealDuration")
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
