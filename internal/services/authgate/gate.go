package authgate

import (
	"crypto/hmac"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/random"
)

// secretLength is the length of a generated OTP secret in hex characters
// (16 random bytes).
const secretLength = 32

const hexAlphabet = "0123456789abcdef"

// Gate validates one-time-passcode credentials against a player's stored
// secret. It is stateless beyond the secret: no rate limiting, no lockout.
//
// The check is a static shared-secret comparison, not a time-based OTP
// derivation. Any caller holding the secret can authorize indefinitely.
type Gate struct {
	random random.Random
}

// New creates a new Gate
func New(random random.Random) *Gate {
	return &Gate{random: random}
}

// GenerateSecret returns a fresh crypto-random secret. It is generated once
// at registration, shown to the player once, and never regenerated.
func (g *Gate) GenerateSecret() string {
	return g.random.String(secretLength, hexAlphabet)
}

// Verify reports whether the submitted code matches the stored secret.
// The comparison runs in constant time so response latency does not reveal
// the position of the first mismatched byte. Malformed or empty input
// simply fails verification; Verify never errors.
func (g *Gate) Verify(secret, submittedCode string) bool {
	if secret == "" {
		return false
	}
	return hmac.Equal([]byte(secret), []byte(submittedCode))
}
