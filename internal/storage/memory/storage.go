package memory

import (
	"context"
	"sync"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.Player
	sessions     map[model.SessionID]*model.GameSession
	openSessions map[model.TableID]model.SessionID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.PlayerID]*model.Player),
		sessions:     make(map[model.SessionID]*model.GameSession),
		openSessions: make(map[model.TableID]model.SessionID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	return players, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (s *Storage) GetOpenSession(ctx context.Context, table model.TableID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.openSessions[table]
	if !ok {
		return nil, model.ErrNoOpenSession
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrNoOpenSession
	}
	return cloneSession(session), nil
}

func (s *Storage) SaveOpenSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	s.openSessions[session.Table] = session.ID
	return nil
}

func (s *Storage) CloseSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	if s.openSessions[session.Table] == session.ID {
		delete(s.openSessions, session.Table)
	}
	return nil
}

// Atomic cross-entity write

func (s *Storage) SavePlayerAndSession(ctx context.Context, player *model.Player, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	s.sessions[session.ID] = cloneSession(session)
	if session.IsOpen() {
		s.openSessions[session.Table] = session.ID
	} else if s.openSessions[session.Table] == session.ID {
		delete(s.openSessions, session.Table)
	}
	return nil
}

// Clones keep callers from mutating stored state through shared pointers

func clonePlayer(p *model.Player) *model.Player {
	cp := *p
	return &cp
}

func cloneSession(gs *model.GameSession) *model.GameSession {
	cp := *gs
	cp.Contributions = make([]model.Contribution, len(gs.Contributions))
	copy(cp.Contributions, gs.Contributions)
	return &cp
}
