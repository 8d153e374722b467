package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/clock"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/random"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/authgate"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/session"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage/memory"
	redisstorage "github.com/SleepTheGod/DiscordCryptoBot/internal/storage/redis"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/txlookup"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/wallet"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthGate       *authgate.Gate
	SessionManager *session.Manager
	Ledger         *ledger.Service

	// Collaborators
	WalletClient *wallet.Client
	TxLookup     *txlookup.Client
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// LedgerConfig holds ledger settings (optional)
	LedgerConfig ledger.Config
	// WalletConfig holds Bitcoin RPC settings (optional)
	WalletConfig wallet.Config
	// TxLookupConfig holds block explorer settings (optional)
	TxLookupConfig txlookup.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	walletCfg := cfg.WalletConfig
	if walletCfg.URL == "" {
		walletCfg = wallet.DefaultConfig()
	}
	lookupCfg := cfg.TxLookupConfig
	if lookupCfg.BaseURL == "" {
		lookupCfg = txlookup.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, cfg.LedgerConfig, logger)
	app.WalletClient = wallet.New(walletCfg)
	app.TxLookup = txlookup.New(lookupCfg)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, ledgerCfg ledger.Config, logger *slog.Logger) *App {
	gate := authgate.New(rnd)
	sessions := session.NewManager(store, clk, logger)
	ledgerService := ledger.New(store, gate, sessions, clk, ledgerCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthGate:       gate,
		SessionManager: sessions,
		Ledger:         ledgerService,
	}
}
