package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/clock"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/authgate"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/session"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage"
)

// Service owns all mutation of player balances and game pots. Every
// balance-moving operation is gated on OTP verification and applied
// atomically: effects are computed on copies and persisted in a single
// storage write, so a failure leaves prior state untouched.
type Service struct {
	storage  storage.Storage
	gate     *authgate.Gate
	sessions *session.Manager
	clock    clock.Clock
	logger   *slog.Logger
	table    model.TableID

	// mu serializes mutating operations. Critical sections are short and
	// never block on external I/O; wallet and chain-lookup calls happen
	// in callers, outside any ledger operation.
	mu sync.Mutex
}

// Config holds configuration for the ledger service
type Config struct {
	// Table is the game table this ledger bets into. Defaults to
	// model.DefaultTable.
	Table model.TableID
}

// New creates a new ledger Service
func New(storage storage.Storage, gate *authgate.Gate, sessions *session.Manager, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	table := cfg.Table
	if table == "" {
		table = model.DefaultTable
	}
	return &Service{
		storage:  storage,
		gate:     gate,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
		table:    table,
	}
}

// Entry is one row of a leaderboard or audit dump.
type Entry struct {
	ID      model.PlayerID
	Balance model.Amount
}

// Register creates a player with a zero balance and a freshly generated
// OTP secret. The returned player carries the secret for its one-time
// display; it is never shown again.
func (s *Service) Register(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.GetPlayer(ctx, id)
	if err == nil {
		return nil, model.ErrPlayerExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player := &model.Player{
		ID:        id,
		Balance:   0,
		OTPSecret: s.gate.GenerateSecret(),
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.String("player_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player_id", string(id)))
	return player, nil
}

// Authorize verifies the player's OTP code without moving any balance.
// Callers gate external side effects on it before the ledger write; the
// balance-moving operations still re-verify under their own lock.
func (s *Service) Authorize(ctx context.Context, id model.PlayerID, authCode string) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}
	if !s.gate.Verify(player.OTPSecret, authCode) {
		return model.ErrUnauthorized
	}
	return nil
}

// GetBalance returns the player's current balance.
func (s *Service) GetBalance(ctx context.Context, id model.PlayerID) (model.Amount, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return 0, err
	}
	return player.Balance, nil
}

// Credit records a confirmed external deposit against the player's balance.
// The on-chain transfer itself belongs to the caller; the ledger only
// records its effect.
func (s *Service) Credit(ctx context.Context, id model.PlayerID, amount model.Amount, authCode string) (model.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return 0, err
	}
	if !s.gate.Verify(player.OTPSecret, authCode) {
		return 0, model.ErrUnauthorized
	}
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	balance, err := player.Balance.Add(amount)
	if err != nil {
		return 0, err
	}
	player.Balance = balance

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save credit",
			slog.String("player_id", string(id)),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	s.logger.Info("balance credited",
		slog.String("player_id", string(id)),
		slog.Int64("amount_sats", int64(amount)),
		slog.Int64("balance_sats", int64(player.Balance)),
	)
	return player.Balance, nil
}

// PlaceBet moves amount from the player's balance into the table's open
// pot, opening a session if none is open. The balance decrement, pot
// increment, and contribution record land together or not at all.
func (s *Service) PlaceBet(ctx context.Context, id model.PlayerID, amount model.Amount, authCode string) (model.Amount, model.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	if !s.gate.Verify(player.OTPSecret, authCode) {
		return 0, 0, model.ErrUnauthorized
	}
	if amount <= 0 {
		return 0, 0, model.ErrInvalidAmount
	}

	balance, err := player.Balance.Sub(amount)
	if err != nil {
		return 0, 0, err
	}

	gameSession, err := s.sessions.EnsureOpenSession(ctx, s.table)
	if err != nil {
		return 0, 0, err
	}
	if err := s.sessions.Contribute(gameSession, id, amount); err != nil {
		return 0, 0, err
	}
	player.Balance = balance

	if err := s.storage.SavePlayerAndSession(ctx, player, gameSession); err != nil {
		s.logger.Error("failed to save bet",
			slog.String("player_id", string(id)),
			slog.String("session_id", string(gameSession.ID)),
			slog.String("error", err.Error()),
		)
		return 0, 0, err
	}

	s.logger.Info("bet placed",
		slog.String("player_id", string(id)),
		slog.String("session_id", string(gameSession.ID)),
		slog.Int64("amount_sats", int64(amount)),
		slog.Int64("pot_sats", int64(gameSession.Pot)),
	)
	return player.Balance, gameSession.Pot, nil
}

// Settle pays the entire open pot to the given player and closes the
// session. No authorization code is required; any registered player can
// claim the pot, matching the current (unauthenticated) settlement design.
func (s *Service) Settle(ctx context.Context, id model.PlayerID) (model.Amount, model.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return 0, 0, err
	}

	gameSession, err := s.sessions.OpenSession(ctx, s.table)
	if err != nil {
		if errors.Is(err, model.ErrNoOpenSession) {
			return 0, 0, model.ErrNoActivePot
		}
		return 0, 0, err
	}
	if gameSession.Pot <= 0 {
		return 0, 0, model.ErrNoActivePot
	}

	pot := gameSession.Pot
	balance, err := player.Balance.Add(pot)
	if err != nil {
		return 0, 0, err
	}
	player.Balance = balance
	s.sessions.Close(gameSession, id)

	if err := s.storage.SavePlayerAndSession(ctx, player, gameSession); err != nil {
		s.logger.Error("failed to save settlement",
			slog.String("player_id", string(id)),
			slog.String("session_id", string(gameSession.ID)),
			slog.String("error", err.Error()),
		)
		return 0, 0, err
	}

	s.logger.Info("pot settled",
		slog.String("player_id", string(id)),
		slog.String("session_id", string(gameSession.ID)),
		slog.Int64("pot_sats", int64(pot)),
		slog.Int64("balance_sats", int64(player.Balance)),
	)
	return player.Balance, pot, nil
}

// Leaderboard returns the top limit players by balance, ties broken by
// identity so the ordering is deterministic.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]Entry, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{ID: p.ID, Balance: p.Balance})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].ID < entries[j].ID
	})

	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// AuditDump returns every player and balance for reconciliation. Order is
// unspecified.
func (s *Service) AuditDump(ctx context.Context) ([]Entry, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{ID: p.ID, Balance: p.Balance})
	}
	return entries, nil
}
