package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/apierr"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/response"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/txlookup"
)

// ChainHandler handles public-chain transaction lookups
type ChainHandler struct {
	lookup *txlookup.Client
}

// NewChainHandler creates a new chain handler
func NewChainHandler(lookup *txlookup.Client) *ChainHandler {
	return &ChainHandler{
		lookup: lookup,
	}
}

// GetTransaction handles GET /api/v1/transactions/{txid}
func (h *ChainHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txid := mux.Vars(r)["txid"]

	details, err := h.lookup.RawTransaction(r.Context(), txid)
	if err != nil {
		WriteError(w, apierr.NewLookupError("could not retrieve transaction information"))
		return
	}

	response.JSON(w, http.StatusOK, response.TransactionResponse{
		TxID:    txid,
		Details: details,
	})
}
