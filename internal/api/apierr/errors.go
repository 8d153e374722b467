package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
	"github.com/SleepTheGod/DiscordCryptoBot/internal/wallet"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodePlayerExists        = "PLAYER_EXISTS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeNoActivePot         = "NO_ACTIVE_POT"
	CodeWalletError         = "WALLET_ERROR"
	CodeLookupError         = "LOOKUP_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Wallet RPC failures are reported as opaque upstream errors; they
	// never corrupt ledger state since Credit runs only after the send
	var rpcErr *wallet.RPCError
	if errors.As(err, &rpcErr) {
		return &httpError{http.StatusBadGateway, APIError{CodeWalletError, rpcErr.Message}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not registered"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player already registered"}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid OTP code"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount must be positive"}}
	case errors.Is(err, model.ErrAmountOverflow):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount out of range"}}
	case errors.Is(err, model.ErrInsufficientBalance):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientBalance, "Insufficient balance"}}
	case errors.Is(err, model.ErrNoActivePot):
		return &httpError{http.StatusNotFound, APIError{CodeNoActivePot, "There is no active pot"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewLookupError creates an upstream lookup failure error
func NewLookupError(message string) error {
	return &httpError{http.StatusBadGateway, APIError{CodeLookupError, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
