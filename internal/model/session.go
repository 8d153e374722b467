package model

import "time"

// SessionID uniquely identifies a game session.
type SessionID string

// TableID identifies a game table. Each table has at most one open session.
type TableID string

// DefaultTable is the single table used when multi-table play is not
// configured.
const DefaultTable TableID = "main"

// SessionState represents the lifecycle phase of a game session
type SessionState string

const (
	SessionStateOpen   SessionState = "open"   // Accepting bets
	SessionStateClosed SessionState = "closed" // Settled, contributions archived
)

// Contribution links a player to a session with a bet amount. Contributions
// are append-only and never mutated after creation.
type Contribution struct {
	ID       string
	PlayerID PlayerID
	Amount   Amount
	PlacedAt time.Time
}

// GameSession is one pot-accumulation round. While open, the pot equals the
// sum of its contributions; settlement empties the pot and archives them.
type GameSession struct {
	ID            SessionID
	Table         TableID
	State         SessionState
	Pot           Amount
	Contributions []Contribution
	CreatedAt     time.Time
	SettledAt     time.Time // zero until settled
	Winner        PlayerID  // empty until settled
}

// IsOpen returns true while the session accepts bets.
func (s *GameSession) IsOpen() bool {
	return s.State == SessionStateOpen
}

// ContributionTotal sums all contribution amounts.
func (s *GameSession) ContributionTotal() Amount {
	var total Amount
	for _, c := range s.Contributions {
		total += c.Amount
	}
	return total
}
