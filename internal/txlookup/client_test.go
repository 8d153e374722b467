package txlookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rawtx/abc123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hash":"abc123","block_height":800000}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	tx, err := client.RawTransaction(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", tx["hash"])
	assert.Equal(t, float64(800000), tx["block_height"])
}

func TestRawTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	_, err := client.RawTransaction(context.Background(), "nonexistent")
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestRawTransactionMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	_, err := client.RawTransaction(context.Background(), "abc123")
	assert.Error(t, err)
}
