package storage

import (
	"context"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. Players are never deleted (audit requirement).
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	GetOpenSession(ctx context.Context, table model.TableID) (*model.GameSession, error)
	SaveOpenSession(ctx context.Context, session *model.GameSession) error
	CloseSession(ctx context.Context, session *model.GameSession) error

	// SavePlayerAndSession persists a player and a session as one atomic
	// write. Used where a single ledger operation mutates both entities
	// (bet placement, settlement) so no partial state is ever visible.
	SavePlayerAndSession(ctx context.Context, player *model.Player, session *model.GameSession) error
}
