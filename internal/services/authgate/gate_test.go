package authgate

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/dependencies/random"
)

type GateSuite struct {
	suite.Suite
	gate *Gate
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) SetupTest() {
	s.gate = New(random.New())
}

// GenerateSecret tests

func (s *GateSuite) TestGenerateSecretLength() {
	secret := s.gate.GenerateSecret()
	s.Len(secret, 32)
}

func (s *GateSuite) TestGenerateSecretIsHex() {
	secret := s.gate.GenerateSecret()
	for _, c := range secret {
		s.Contains(hexAlphabet, string(c))
	}
}

func (s *GateSuite) TestGenerateSecretIsUniquePerCall() {
	s.NotEqual(s.gate.GenerateSecret(), s.gate.GenerateSecret())
}

// Verify tests

func (s *GateSuite) TestVerifyAcceptsExactMatch() {
	secret := s.gate.GenerateSecret()
	s.True(s.gate.Verify(secret, secret))
}

func (s *GateSuite) TestVerifyRejectsWrongCode() {
	secret := s.gate.GenerateSecret()
	s.False(s.gate.Verify(secret, s.gate.GenerateSecret()))
}

func (s *GateSuite) TestVerifyRejectsLastByteMismatch() {
	secret := "0123456789abcdef0123456789abcdef"
	code := "0123456789abcdef0123456789abcdee"
	s.False(s.gate.Verify(secret, code))
}

func (s *GateSuite) TestVerifyRejectsFirstByteMismatch() {
	secret := "0123456789abcdef0123456789abcdef"
	code := "1123456789abcdef0123456789abcdef"
	s.False(s.gate.Verify(secret, code))
}

func (s *GateSuite) TestVerifyRejectsEmptyCode() {
	secret := s.gate.GenerateSecret()
	s.False(s.gate.Verify(secret, ""))
}

func (s *GateSuite) TestVerifyRejectsEmptySecret() {
	s.False(s.gate.Verify("", ""))
	s.False(s.gate.Verify("", "anything"))
}

func (s *GateSuite) TestVerifyRejectsLengthMismatch() {
	secret := s.gate.GenerateSecret()
	s.False(s.gate.Verify(secret, secret[:16]))
	s.False(s.gate.Verify(secret, secret+"00"))
}

func (s *GateSuite) TestVerifyHandlesArbitraryBytes() {
	// Malformed input fails verification, never panics
	s.False(s.gate.Verify(s.gate.GenerateSecret(), string([]byte{0x00, 0xff, 0x80})))
}
