package txlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches raw transaction details from a public block explorer.
// Results are informational only and never touch ledger state.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Config holds explorer connection settings
type Config struct {
	BaseURL string // e.g. https://blockchain.info
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for explorer configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://blockchain.info",
		Timeout: 15 * time.Second,
	}
}

// New creates a new lookup Client
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// RawTransaction fetches the explorer's record for a transaction ID as
// decoded JSON.
func (c *Client) RawTransaction(ctx context.Context, txid string) (map[string]any, error) {
	url := fmt.Sprintf("%s/rawtx/%s", c.cfg.BaseURL, txid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tx lookup request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tx lookup HTTP %d for %s", resp.StatusCode, txid)
	}

	var tx map[string]any
	if err := json.Unmarshal(body, &tx); err != nil {
		return nil, fmt.Errorf("invalid lookup response: %w", err)
	}
	return tx, nil
}
