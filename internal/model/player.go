package model

import "time"

// PlayerID is the opaque external identity supplied by the front end
// (e.g. a chat platform user ID). The ledger treats it as an uninterpreted,
// globally unique key.
type PlayerID string

// Player represents a registered participant with a custodial balance.
// Players are never deleted; the record is part of the audit trail.
type Player struct {
	ID        PlayerID
	Balance   Amount // satoshis, never negative
	OTPSecret string // shown once at registration, compared constant-time after
	CreatedAt time.Time
}
