package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/request"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/response"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/wallet"
)

// WagerHandler handles deposit, bet, and settlement endpoints
type WagerHandler struct {
	ledger *ledger.Service
	wallet *wallet.Client
	logger *slog.Logger
}

// NewWagerHandler creates a new wager handler
func NewWagerHandler(ledger *ledger.Service, wallet *wallet.Client, logger *slog.Logger) *WagerHandler {
	return &WagerHandler{
		ledger: ledger,
		wallet: wallet,
		logger: logger,
	}
}

// Deposit handles POST /api/v1/players/{player_id}/deposit
//
// Ordering matters here: the OTP gate runs before the on-chain send, so an
// unregistered or unauthorized caller can never trigger a coin movement.
// The balance is credited only once the wallet reports the transfer, so an
// RPC failure leaves the ledger untouched.
func (h *WagerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Address == "" {
		WriteError(w, NewInvalidRequestError("address is required"))
		return
	}
	if req.AmountSats <= 0 {
		WriteError(w, model.ErrInvalidAmount)
		return
	}

	amount := model.Amount(req.AmountSats)

	if err := h.ledger.Authorize(r.Context(), playerID, req.OTPCode); err != nil {
		WriteError(w, err)
		return
	}

	txid, err := h.wallet.SendToAddress(r.Context(), req.Address, amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	balance, err := h.ledger.Credit(r.Context(), playerID, amount, req.OTPCode)
	if err != nil {
		// The coins already moved; flag the orphaned transfer for manual
		// reconciliation against the audit dump
		h.logger.Error("credit failed after on-chain send",
			slog.String("player_id", string(playerID)),
			slog.String("txid", txid),
			slog.Int64("amount_sats", int64(amount)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DepositResponse{
		TxID:        txid,
		BalanceSats: int64(balance),
	})
}

// PlaceBet handles POST /api/v1/players/{player_id}/bets
func (h *WagerHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.BetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	balance, pot, err := h.ledger.PlaceBet(r.Context(), playerID, model.Amount(req.AmountSats), req.OTPCode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BetResponse{
		BalanceSats: int64(balance),
		PotSats:     int64(pot),
	})
}

// Settle handles POST /api/v1/players/{player_id}/settle
func (h *WagerHandler) Settle(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	balance, pot, err := h.ledger.Settle(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettleResponse{
		BalanceSats: int64(balance),
		PotSats:     int64(pot),
	})
}
