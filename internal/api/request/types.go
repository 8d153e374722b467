package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	PlayerID string `json:"player_id"`
}

// DepositRequest is the request body for an on-chain deposit
type DepositRequest struct {
	Address    string `json:"address"`
	AmountSats int64  `json:"amount_sats"`
	OTPCode    string `json:"otp_code"`
}

// BetRequest is the request body for placing a bet
type BetRequest struct {
	AmountSats int64  `json:"amount_sats"`
	OTPCode    string `json:"otp_code"`
}
