package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a slog.Logger that writes nowhere. Suites pass it to
// services so assertions aren't buried in log output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
