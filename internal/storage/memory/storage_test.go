package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
)

type MemoryStorageSuite struct {
	suite.Suite
	ctx     context.Context
	storage *Storage
}

func TestMemoryStorageSuite(t *testing.T) {
	suite.Run(t, new(MemoryStorageSuite))
}

func (s *MemoryStorageSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = New()
}

func (s *MemoryStorageSuite) player(id model.PlayerID, balance model.Amount) *model.Player {
	return &model.Player{
		ID:        id,
		Balance:   balance,
		OTPSecret: "0123456789abcdef0123456789abcdef",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *MemoryStorageSuite) openSession(id model.SessionID) *model.GameSession {
	return &model.GameSession{
		ID:        id,
		Table:     model.DefaultTable,
		State:     model.SessionStateOpen,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Player tests

func (s *MemoryStorageSuite) TestSaveAndGetPlayer() {
	player := s.player("alice", 10)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player, got)
}

func (s *MemoryStorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *MemoryStorageSuite) TestSavePlayerOverwrites() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 20)))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Amount(20), got.Balance)
}

func (s *MemoryStorageSuite) TestGetPlayerReturnsCopy() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	got.Balance = 999

	again, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Amount(10), again.Balance)
}

func (s *MemoryStorageSuite) TestListPlayers() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("alice", 10)))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.player("bob", 20)))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *MemoryStorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

// Session tests

func (s *MemoryStorageSuite) TestSaveAndGetSession() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session, got)
}

func (s *MemoryStorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *MemoryStorageSuite) TestGetOpenSessionNone() {
	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)
}

func (s *MemoryStorageSuite) TestSaveOpenSessionSetsPointer() {
	session := s.openSession("session-1")
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, session))

	got, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
}

func (s *MemoryStorageSuite) TestSaveSessionDoesNotSetPointer() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.openSession("session-1")))

	_, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.ErrorIs(err, model.ErrNoOpenSession)
}

func (s *MemoryStorageSuite) TestCloseSessionClearsPointer() {
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

func (s *MemoryStorageSuite) TestGetOpenSessionReturnsCopy() {
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, s.openSession("session-1")))

	got, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	got.Pot = 999
	got.Contributions = append(got.Contributions, model.Contribution{PlayerID: "alice", Amount: 999})

	again, err := s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	s.Equal(model.Amount(0), again.Pot)
	s.Empty(again.Contributions)
}

func (s *MemoryStorageSuite) TestTablesAreIndependent() {
	main := s.openSession("session-main")
	side := s.openSession("session-side")
	side.Table = "side"
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, main))
	s.Require().NoError(s.storage.SaveOpenSession(s.ctx, side))

	got, err := s.storage.GetOpenSession(s.ctx, "side")
	s.Require().NoError(err)
	s.Equal(side.ID, got.ID)

	got, err = s.storage.GetOpenSession(s.ctx, model.DefaultTable)
	s.Require().NoError(err)
	s.Equal(main.ID, got.ID)
}

// SavePlayerAndSession tests

func (s *MemoryStorageSuite) TestSavePlayerAndSessionOpen() {
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
}

func (s *MemoryStorageSuite) TestSavePlayerAndSessionClosed() {
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
}
