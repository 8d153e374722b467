package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
)

type RedisStorageSuite struct {
	suite.Suite
	ctx     context.Context
	mini    *miniredis.Miniredis
	storage *Storage
}

func TestRedisStorageSuite(t *testing.T) {
	suite.Run(t, new(RedisStorageSuite))
}

func (s *RedisStorageSuite) SetupTest() {
	s.ctx = context.Background()

	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	s.storage = NewWithClient(client, Config{ClosedSessionTTL: time.Hour})
}

func (s *RedisStorageSuite) TearDownTest() {
	s.storage.Close()
	s.mini.Close()
}

func (s *RedisStorageSuite) player(id model.PlayerID, balance model.Amount) *model.Player {
	return &model.Player{
		ID:        id,
		Balance:   balance,
		OTPSecret: "0123456789abcdef0123456789abcdef",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisStorageSuite) openSession(id model.SessionID) *model.GameSession {
	return &model.GameSession{
		ID:        id,
		Table:     model.DefaultTable,
		State:     model.SessionStateOpen,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Player tests

func (s *RedisStorageSuite) TestSaveAndGetPlayer() {
	player := s.player("alice", 10)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player, got)
}

func (s *RedisStorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *RedisStorageSuite) TestSavePlayerOverwrites() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 20)))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Amount(20), got.Balance)
}

func (s *RedisStorageSuite) TestListPlayersUsesIndex() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("bob", 20)))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)

	ids := make(map[model.PlayerID]bool)
	for _, p := range players {
		ids[p.ID] = true
	}
	s.True(ids["alice"])
	s.True(ids["bob"])
}

func (s *RedisStorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *RedisStorageSuite) TestListPlayersSkipsDanglingIndexEntries() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("bob", 20)))
	s.mini.Del(playerKey("bob"))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("alice"), players[0].ID)
}

// Session tests

func (s *RedisStorageSuite) TestSaveAndGetSession() {
	session := s.openSession("session-1")
	session.Contributions = []model.Contribution{
		{ID: "c-1", PlayerID: "alice", Amount: 4, PlacedAt: session.CreatedAt},
	}
	session.Pot = 4
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session, got)
}

func (s *RedisStorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *RedisStorageSuite) TestGetOpenSessionNone() {
	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)
}

func (s *RedisStorageSuite) TestSaveOpenSessionSetsPointer() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, session))

	got, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
}

func (s *RedisStorageSuite) TestGetOpenSessionDanglingPointer() {
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, s.openSession("session-1")))
	s.mini.Del(sessionKey("session-1"))

	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)
}

func (s *RedisStorageSuite) TestCloseSessionClearsPointer() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, session))

	session.State = model.SessionStateClosed
	s.Require().NoError(s.storage.CloseSession(s.ctx, session))

	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)

	got, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.SessionStateClosed, got.State)
}

func (s *RedisStorageSuite) TestClosedSessionGetsRetentionTTL() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, session))
	s.Equal(time.Duration(0), s.mini.TTL(sessionKey("session-1")))

	session.State = model.SessionStateClosed
	s.Require().NoError(s.storage.CloseSession(s.ctx, session))
	s.Equal(time.Hour, s.mini.TTL(sessionKey("session-1")))
}

// SavePlayerAndSession tests

func (s *RedisStorageSuite) TestSavePlayerAndSessionOpen() {
	player := s.player("alice", 6)
	session := s.openSession("session-1")
	session.Pot = 4

	s.Require().NoError(s.storage.SavePlayerAndSession(s.ctx, player, session))

	gotPlayer, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Amount(6), gotPlayer.Balance)

	gotSession, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	s.Equal(model.Amount(4), gotSession.Pot)

	// Index picked up the player too
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *RedisStorageSuite) TestSavePlayerAndSessionClosed() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, session))

	session.State = model.SessionStateClosed
	session.Winner = "alice"
	s.Require().NoError(s.storage.SavePlayerAndSession(s.ctx, s.player("alice", 16), session))

	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)

	got, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("alice"), got.Winner)
	s.Equal(time.Hour, s.mini.TTL(sessionKey("session-1")))
}
