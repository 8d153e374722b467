package redis

import (
	"fmt"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "gambot"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player IDs.
// Maintained so ListPlayers never needs a KEYS scan.
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// openSessionKey returns the Redis key for the open-session pointer of a table
func openSessionKey(table model.TableID) string {
	return fmt.Sprintf("%s:open_session:%s", keyPrefix, table)
}
