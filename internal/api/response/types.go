package response

import (
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
)

// RegisterResponse returns the new player with the one-time secret display.
// The secret is never included in any other response.
type RegisterResponse struct {
	PlayerID  string `json:"player_id"`
	OTPSecret string `json:"otp_secret"`
}

// RegisterResponseFromModel converts a freshly registered player
func RegisterResponseFromModel(p *model.Player) RegisterResponse {
	return RegisterResponse{
		PlayerID:  string(p.ID),
		OTPSecret: p.OTPSecret,
	}
}

// BalanceResponse reports a player's balance
type BalanceResponse struct {
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
	BalanceBTC  string `json:"balance_btc"`
}

// NewBalanceResponse builds a BalanceResponse
func NewBalanceResponse(id model.PlayerID, balance model.Amount) BalanceResponse {
	return BalanceResponse{
		PlayerID:    string(id),
		BalanceSats: int64(balance),
		BalanceBTC:  balance.BTC(),
	}
}

// DepositResponse reports a confirmed deposit
type DepositResponse struct {
	TxID        string `json:"txid"`
	BalanceSats int64  `json:"balance_sats"`
}

// BetResponse reports a placed bet
type BetResponse struct {
	BalanceSats int64 `json:"balance_sats"`
	PotSats     int64 `json:"pot_sats"`
}

// SettleResponse reports a settled pot
type SettleResponse struct {
	BalanceSats int64 `json:"balance_sats"`
	PotSats     int64 `json:"pot_sats"`
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
}

// LeaderboardResponse lists the top players by balance
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromEntries converts ledger entries to a response
func LeaderboardFromEntries(entries []ledger.Entry) LeaderboardResponse {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Rank:        i + 1,
			PlayerID:    string(e.ID),
			BalanceSats: int64(e.Balance),
		}
	}
	return LeaderboardResponse{Entries: out}
}

// AuditEntry is one audit row
type AuditEntry struct {
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
}

// AuditResponse is the full reconciliation dump
type AuditResponse struct {
	Players []AuditEntry `json:"players"`
}

// AuditFromEntries converts ledger entries to a response
func AuditFromEntries(entries []ledger.Entry) AuditResponse {
	out := make([]AuditEntry, len(entries))
	for i, e := range entries {
		out[i] = AuditEntry{
			PlayerID:    string(e.ID),
			BalanceSats: int64(e.Balance),
		}
	}
	return AuditResponse{Players: out}
}

// TransactionResponse wraps a raw chain transaction lookup
type TransactionResponse struct {
	TxID    string         `json:"txid"`
	Details map[string]any `json:"details"`
}
