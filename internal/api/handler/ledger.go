package handler

import (
	"net/http"
	"strconv"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/api/response"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/services/ledger"
)

// defaultLeaderboardLimit is how many players the leaderboard shows when no
// limit is given
const defaultLeaderboardLimit = 10

// LedgerHandler handles leaderboard and audit endpoints
type LedgerHandler struct {
	ledger *ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledger *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
	}
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *LedgerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.ledger.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}

// Audit handles GET /api/v1/audit
func (h *LedgerHandler) Audit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.AuditDump(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuditFromEntries(entries))
}
