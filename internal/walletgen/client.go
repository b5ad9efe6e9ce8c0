// Package walletgen calls the external wallet provisioning backend.
package walletgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jarrensj/monkfish/config"
	"github.com/jarrensj/monkfish/internal/entities"

	"go.uber.org/zap"
)

// Client performs wallet generation requests. One attempt per call, no
// retries; the caller may re-invoke.
type Client struct {
	log     *zap.SugaredLogger
	baseURL string
	http    *http.Client
}

// New constructs a wallet backend client.
func New(log *zap.SugaredLogger, cfg config.WalletConfig) *Client {
	return &Client{
		log:     log.Named("walletgen"),
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type generateRequest struct {
	TeamName string `json:"teamName"`
	Owner    string `json:"owner"`
	UserID   string `json:"userId"`
}

type generateResponse struct {
	PublicAddress string `json:"publicAddress"`
	ID            string `json:"id"`
	TeamName      string `json:"teamName"`
	Error         string `json:"error"`
}

// Generate requests a wallet for the team and relays the backend result.
func (c *Client) Generate(ctx context.Context, teamName, ownerID string) (*entities.GeneratedWallet, error) {
	body, err := json.Marshal(generateRequest{TeamName: teamName, Owner: ownerID, UserID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/wallet/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("wallet backend unreachable", "error", err)
		return nil, fmt.Errorf("%w: backend unreachable", entities.ErrWalletBackend)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload generateResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Errorw("wallet backend rejected request",
			"status", resp.StatusCode, "team", teamName, "upstream_error", payload.Error)
		if decodeErr == nil && payload.Error != "" {
			return nil, fmt.Errorf("%w: %s", entities.ErrWalletBackend, payload.Error)
		}
		return nil, fmt.Errorf("%w: status %d", entities.ErrWalletBackend, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %v", entities.ErrWalletBackend, decodeErr)
	}
	if payload.PublicAddress == "" {
		return nil, fmt.Errorf("%w: empty public address", entities.ErrWalletBackend)
	}

	c.log.Infow("wallet generated", "team", payload.TeamName, "address", payload.PublicAddress)
	return &entities.GeneratedWallet{
		ID:            payload.ID,
		PublicAddress: payload.PublicAddress,
		TeamName:      payload.TeamName,
	}, nil
}
