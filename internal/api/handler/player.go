package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/request"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/response"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
)

// PlayerHandler handles registration and balance endpoints
type PlayerHandler struct {
	ledger *ledger.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledger *ledger.Service) *PlayerHandler {
	return &PlayerHandler{
		ledger: ledger,
	}
}

// Register handles POST /api/v1/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	player, err := h.ledger.Register(r.Context(), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponseFromModel(player))
}

// GetBalance handles GET /api/v1/players/{player_id}/balance
func (h *PlayerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	balance, err := h.ledger.GetBalance(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewBalanceResponse(playerID, balance))
}
