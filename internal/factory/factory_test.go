package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage/memory"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NotNil(t, app.AuthGate)
	assert.NotNil(t, app.SessionManager)
	assert.NotNil(t, app.Ledger)
	assert.NotNil(t, app.WalletClient)
	assert.NotNil(t, app.TxLookup)
}

func TestNewRejectsRedisWithoutConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassandra"})
	assert.Error(t, err)
}

func TestTestAppMocksAreWired(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	app.MockRandom.QueueString("0123456789abcdef0123456789abcdef")

	player, err := app.Ledger.Register(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", player.OTPSecret)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), player.CreatedAt)

	app.MockClock.Advance(time.Hour)
	app.MockRandom.QueueString("fedcba9876543210fedcba9876543210")

	player, err = app.Ledger.Register(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), player.CreatedAt)
}

func TestTestAppFullRound(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	app.MockRandom.QueueString("0123456789abcdef0123456789abcdef")
	alice, err := app.Ledger.Register(ctx, "alice")
	require.NoError(t, err)

	_, err = app.Ledger.Credit(ctx, "alice", 10, alice.OTPSecret)
	require.NoError(t, err)

	balance, pot, err := app.Ledger.PlaceBet(ctx, "alice", 4, alice.OTPSecret)
	require.NoError(t, err)
	assert.Equal(t, model.Amount(6), balance)
	assert.Equal(t, model.Amount(4), pot)

	balance, pot, err = app.Ledger.Settle(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.Amount(10), balance)
	assert.Equal(t, model.Amount(4), pot)
}
