// Package rest provides HTTP access to services around the chat core,
// currently the avatar service that chat renderers pull images from.
package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultBaseURL = "https://avatars.dicebear.com/api/adventurer-neutral"

// AvatarClient fetches avatar images for usernames. Results are cached so a
// renderer can prefetch the whole roster without hammering the service.
type AvatarClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

// NewAvatarClient creates a client against the public avatar service.
func NewAvatarClient() *AvatarClient {
	return &AvatarClient{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// SetBaseURL overrides the avatar service location.
func (c *AvatarClient) SetBaseURL(u string) {
	if u != "" {
		c.baseURL = u
	}
}

// SetHTTPClient allows setting a custom HTTP client.
func (c *AvatarClient) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// URL returns the image location for a username.
func (c *AvatarClient) URL(name string) string {
	return fmt.Sprintf("%s/%s.svg", c.baseURL, name)
}

// Fetch downloads the avatar SVG for a username. The avatar for a name is
// deterministic, so cache staleness is harmless.
func (c *AvatarClient) Fetch(ctx context.Context, name string) ([]byte, error) {
	if v, ok := c.cache.Get(name); ok {
		return v.([]byte), nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.URL(name), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("avatar service: status %d", resp.StatusCode)
	}

	c.cache.Set(name, body, cache.DefaultExpiration)
	return body, nil
}
