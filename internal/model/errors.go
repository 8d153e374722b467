package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already registered")

	// Authorization errors
	ErrUnauthorized = errors.New("otp verification failed")

	// Ledger errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAmountOverflow      = errors.New("amount overflows balance range")

	// Session errors
	ErrNoActivePot     = errors.New("no active pot")
	ErrNoOpenSession   = errors.New("no open game session")
	ErrSessionNotFound = errors.New("game session not found")
)
