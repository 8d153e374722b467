package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/clock"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage"
)

// Manager owns game session lifecycle: at any instant a table has either
// exactly one open session or none. Sessions are created lazily on first
// bet and closed on settlement; closed sessions keep their contributions
// as the audit trail.
//
// Manager never persists on its own. Callers mutate the returned session
// and persist it together with the player change in one storage write.
type Manager struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewManager creates a new session Manager
func NewManager(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// OpenSession returns the open session for the table, or
// model.ErrNoOpenSession if the table has none.
func (m *Manager) OpenSession(ctx context.Context, table model.TableID) (*model.GameSession, error) {
	return m.storage.GetOpenSession(ctx, table)
}

// EnsureOpenSession returns the table's open session, creating a fresh one
// if no session is open. The new session is not persisted; it is saved by
// the caller's atomic write alongside the bet that created it.
func (m *Manager) EnsureOpenSession(ctx context.Context, table model.TableID) (*model.GameSession, error) {
	session, err := m.storage.GetOpenSession(ctx, table)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, model.ErrNoOpenSession) {
		return nil, err
	}

	session = &model.GameSession{
		ID:        model.SessionID(uuid.NewString()),
		Table:     table,
		State:     model.SessionStateOpen,
		Pot:       0,
		CreatedAt: m.clock.Now(),
	}

	m.logger.Info("game session opened",
		slog.String("session_id", string(session.ID)),
		slog.String("table", string(table)),
	)

	return session, nil
}

// Contribute appends a bet to the session and grows the pot. The session
// must be open.
func (m *Manager) Contribute(session *model.GameSession, playerID model.PlayerID, amount model.Amount) error {
	if !session.IsOpen() {
		return model.ErrNoOpenSession
	}

	pot, err := session.Pot.Add(amount)
	if err != nil {
		return err
	}

	session.Pot = pot
	session.Contributions = append(session.Contributions, model.Contribution{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		Amount:   amount,
		PlacedAt: m.clock.Now(),
	})
	return nil
}

// Close marks the session settled in favor of the winner and empties the
// pot. Contributions stay on the record as the archived audit trail.
func (m *Manager) Close(session *model.GameSession, winner model.PlayerID) {
	session.State = model.SessionStateClosed
	session.Pot = 0
	session.Winner = winner
	session.SettledAt = m.clock.Now()

	m.logger.Info("game session settled",
		slog.String("session_id", string(session.ID)),
		slog.String("table", string(session.Table)),
		slog.String("winner", string(winner)),
	)
}
