package walletgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarrensj/monkfish/config"
	"github.com/jarrensj/monkfish/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return New(zap.NewNop().Sugar(), config.WalletConfig{
		BaseURL:        baseURL,
		RequestTimeout: time.Second,
	})
}

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/wallet/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Acme Corp", body["teamName"])
		require.Equal(t, "u1", body["owner"])
		require.Equal(t, "u1", body["userId"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"publicAddress": "So1anaAddr111",
			"id":            "w1",
			"teamName":      "Acme Corp",
		})
	}))
	defer srv.Close()

	wallet, err := newTestClient(srv.URL).Generate(context.Background(), "Acme Corp", "u1")
	require.NoError(t, err)
	require.Equal(t, "So1anaAddr111", wallet.PublicAddress)
	require.Equal(t, "w1", wallet.ID)
	require.Equal(t, "Acme Corp", wallet.TeamName)
}

func TestClientGeneratePropagatesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "signing keys unavailable"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "Acme Corp", "u1")
	require.ErrorIs(t, err, entities.ErrWalletBackend)
	require.Contains(t, err.Error(), "signing keys unavailable")
}

func TestClientGenerateOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "Acme Corp", "u1")
	require.ErrorIs(t, err, entities.ErrWalletBackend)
	require.Contains(t, err.Error(), "status 500")
}

func TestClientGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "Acme Corp", "u1")
	require.ErrorIs(t, err, entities.ErrWalletBackend)
}

func TestClientGenerateRejectsEmptyAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "w1", "teamName": "Acme Corp"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "Acme Corp", "u1")
	require.ErrorIs(t, err, entities.ErrWalletBackend)
}
