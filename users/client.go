// Package users is a client for the external identity service. The listing
// it performs is informational only: the dispatcher logs the user count once
// per inspection request, and any failure is logged and swallowed.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/use-agent/pagecheck/config"
)

// User is one entry of the identity service's user listing.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client talks to the identity service.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a Client, or nil when no base URL is configured. A nil
// Client is valid; its methods are no-ops.
func New(cfg config.UsersConfig) *Client {
	if cfg.BaseURL == "" {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
	}
}

// List fetches the user listing from GET <base>/users.
func (c *Client) List(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("users: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("users: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("users: HTTP %d from identity service", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("users: read body: %w", err)
	}

	var list []User
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("users: decode listing: %w", err)
	}
	return list, nil
}

// LogListing performs the informational listing call and logs the outcome.
// Failures are logged, never propagated. Safe on a nil Client.
func (c *Client) LogListing(ctx context.Context) {
	if c == nil {
		return
	}
	list, err := c.List(ctx)
	if err != nil {
		slog.Warn("identity service listing failed", "error", err)
		return
	}
	slog.Info("identity service listing", "users", len(list))
}
