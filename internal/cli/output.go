package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		o.printRegisterResult(v)
	case BalanceResult:
		o.printBalanceResult(v)
	case DepositResult:
		o.printDepositResult(v)
	case BetResult:
		o.printBetResult(v)
	case SettleResult:
		o.printSettleResult(v)
	case LeaderboardResult:
		o.printLeaderboardResult(v)
	case AuditResult:
		o.printAuditResult(v)
	case TransactionResult:
		o.printTransactionResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RegisterResult response type (matches API)
type RegisterResult struct {
	PlayerID  string `json:"player_id"`
	OTPSecret string `json:"otp_secret"`
}

// BalanceResult response type
type BalanceResult struct {
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
	BalanceBTC  string `json:"balance_btc"`
}

// DepositResult response type
type DepositResult struct {
	TxID        string `json:"txid"`
	BalanceSats int64  `json:"balance_sats"`
}

// BetResult response type
type BetResult struct {
	BalanceSats int64 `json:"balance_sats"`
	PotSats     int64 `json:"pot_sats"`
}

// SettleResult response type
type SettleResult struct {
	BalanceSats int64 `json:"balance_sats"`
	PotSats     int64 `json:"pot_sats"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
}

// LeaderboardResult response type
type LeaderboardResult struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// AuditEntry response type
type AuditEntry struct {
	PlayerID    string `json:"player_id"`
	BalanceSats int64  `json:"balance_sats"`
}

// AuditResult response type
type AuditResult struct {
	Players []AuditEntry `json:"players"`
}

// TransactionResult response type
type TransactionResult struct {
	TxID    string         `json:"txid"`
	Details map[string]any `json:"details"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Printf("Player %s has joined the game!\n", r.PlayerID)
	fmt.Printf("OTP secret (shown once, store it safely): %s\n", r.OTPSecret)
}

func (o *Output) printBalanceResult(b BalanceResult) {
	fmt.Printf("Balance for %s: %s BTC (%d sats)\n", b.PlayerID, b.BalanceBTC, b.BalanceSats)
}

func (o *Output) printDepositResult(d DepositResult) {
	fmt.Println("Deposit successful!")
	fmt.Printf("Transaction ID: %s\n", d.TxID)
	fmt.Printf("New balance: %d sats\n", d.BalanceSats)
}

func (o *Output) printBetResult(b BetResult) {
	fmt.Printf("Bet placed. Current pot: %d sats\n", b.PotSats)
	fmt.Printf("Your balance: %d sats\n", b.BalanceSats)
}

func (o *Output) printSettleResult(s SettleResult) {
	fmt.Printf("Pot of %d sats settled!\n", s.PotSats)
	fmt.Printf("New balance: %d sats\n", s.BalanceSats)
}

func (o *Output) printLeaderboardResult(l LeaderboardResult) {
	fmt.Println("Top Players:")
	for _, e := range l.Entries {
		fmt.Printf("%d. %s: %d sats\n", e.Rank, e.PlayerID, e.BalanceSats)
	}
}

func (o *Output) printAuditResult(a AuditResult) {
	fmt.Println("Audit Report:")
	for _, p := range a.Players {
		fmt.Printf("Player %s: %d sats\n", p.PlayerID, p.BalanceSats)
	}
}

func (o *Output) printTransactionResult(t TransactionResult) {
	fmt.Printf("Transaction %s details:\n", t.TxID)
	data, _ := json.MarshalIndent(t.Details, "", "  ")
	fmt.Println(string(data))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
