package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/handler"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/middleware"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/txlookup"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/wallet"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Ledger       *ledger.Service
	WalletClient *wallet.Client
	TxLookup     *txlookup.Client
}

// NewRouter creates a new API router with all routes configured.
//
// Identity is caller-supplied in the path, matching the front-end contract:
// the chat layer resolves who is speaking, the OTP code in the body
// authorizes balance-moving calls. There is no session layer.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Ledger)
	wagerHandler := handler.NewWagerHandler(cfg.Ledger, cfg.WalletClient, cfg.Logger)
	ledgerHandler := handler.NewLedgerHandler(cfg.Ledger)
	chainHandler := handler.NewChainHandler(cfg.TxLookup)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/balance", playerHandler.GetBalance).Methods(http.MethodGet)

	// Wagering routes
	api.HandleFunc("/players/{player_id}/deposit", wagerHandler.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/bets", wagerHandler.PlaceBet).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/settle", wagerHandler.Settle).Methods(http.MethodPost)

	// Ledger-wide routes
	api.HandleFunc("/leaderboard", ledgerHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/audit", ledgerHandler.Audit).Methods(http.MethodGet)

	// Chain lookup
	api.HandleFunc("/transactions/{txid}", chainHandler.GetTransaction).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
