package confirm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orbitads/orwallet/internal/config"
	"github.com/orbitads/orwallet/pkg/clients"
)

type request struct {
	MinutesPlayed int `json:"minutesPlayed"`
}

// Client talks to the remote reward-confirmation endpoint for game sessions.
// A non-2xx answer is fatal to the claim being verified, nothing else.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.ConfirmAddress,
		client: client,
	}
}

func (c *Client) ConfirmPlaytime(ctx context.Context, bearerToken string, minutesPlayed int) error {
	body, err := json.Marshal(request{MinutesPlayed: minutesPlayed})
	if err != nil {
		return fmt.Errorf("failed to encode confirmation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/rewards/confirm", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("confirmation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("confirmation endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
