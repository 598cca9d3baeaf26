// Package availability holds the client for the warehouse availability
// endpoint. The check reflects stock at lookup time only; nothing locks
// the stock between this call and the order commit.
package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *ClientConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type checkRequest struct {
	Items []model.ItemRequest `json:"items"`
}

type checkResponse struct {
	Available bool `json:"available"`
}

// Check reports whether every requested quantity is currently fulfillable.
func (c *Client) Check(ctx context.Context, items []model.ItemRequest) (bool, error) {
	body, err := json.Marshal(checkRequest{Items: items})
	if err != nil {
		return false, fmt.Errorf("marshal check request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("availability check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("availability check: unexpected status %d", resp.StatusCode)
	}

	var out checkResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode check response: %w", err)
	}
	return out.Available, nil
}
