package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SleepTheGod/DiscordCryptoBot/internal/model"
)

// Client performs coin movements through a Bitcoin Core JSON-RPC node.
// The ledger never calls it; handlers sequence a send before recording its
// effect with Credit, so an RPC failure can never corrupt ledger state.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Config holds Bitcoin RPC connection settings
type Config struct {
	URL      string // e.g. http://localhost:8332
	User     string
	Password string
	Timeout  time.Duration
}

// DefaultConfig returns sensible defaults for wallet configuration
func DefaultConfig() Config {
	return Config{
		URL:     "http://localhost:8332",
		Timeout: 30 * time.Second,
	}
}

// New creates a new wallet Client
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// RPCError is a JSON-RPC error returned by the node
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("bitcoin rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// SendToAddress sends amount to the given address and returns the
// transaction ID. Bitcoin Core takes the amount in BTC.
func (c *Client) SendToAddress(ctx context.Context, address string, amount model.Amount) (string, error) {
	var txid string
	if err := c.call(ctx, "sendtoaddress", []any{address, json.Number(amount.BTC())}, &txid); err != nil {
		return "", err
	}
	return txid, nil
}

// call performs a JSON-RPC request against the node
func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      "gambot",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.User, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wallet rpc request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read rpc response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return fmt.Errorf("invalid rpc response (HTTP %d): %w", resp.StatusCode, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("failed to parse rpc result: %w", err)
		}
	}
	return nil
}
