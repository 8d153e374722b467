package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/factory"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
	redisstorage "github.com/SleepTheGod/DiscordCryptoBot/internal/storage/redis"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/txlookup"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/wallet"
)

func main() {
	// Load .env if present; real environment takes precedence
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		LedgerConfig: ledger.Config{
			Table: model.TableID(os.Getenv("GAME_TABLE")),
		},
		WalletConfig: wallet.Config{
			URL:      os.Getenv("BITCOIN_RPC_URL"),
			User:     os.Getenv("BITCOIN_RPC_USER"),
			Password: os.Getenv("BITCOIN_RPC_PASSWORD"),
		},
		TxLookupConfig: txlookup.Config{
			BaseURL: os.Getenv("EXPLORER_URL"),
		},
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		if raw := os.Getenv("CLOSED_SESSION_TTL"); raw != "" {
			ttl, err := time.ParseDuration(raw)
			if err != nil {
				logger.Error("invalid CLOSED_SESSION_TTL", slog.String("error", err.Error()))
				os.Exit(1)
			}
			redisCfg.ClosedSessionTTL = ttl
		}
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Ledger:       app.Ledger,
		WalletClient: app.WalletClient,
		TxLookup:     app.TxLookup,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("invalid PORT", slog.String("error", err.Error()))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
