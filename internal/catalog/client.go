package catalog

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/plantdeck/internal/logging"
)

const (
	// DefaultBaseURL is the house-plants catalog endpoint on RapidAPI
	DefaultBaseURL = "https://house-plants2.p.rapidapi.com"

	// DefaultHost is the RapidAPI host identifier sent with every request
	DefaultHost = "house-plants2.p.rapidapi.com"

	// HeaderAPIKey carries the RapidAPI key
	HeaderAPIKey = "X-RapidAPI-Key"

	// HeaderHost carries the RapidAPI host identifier
	HeaderHost = "X-RapidAPI-Host"

	categoriesPath = "/categories"
	categoryPath   = "/category/"
)

// Doer is the HTTP capability the client depends on. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestConfig is the fixed configuration shared by every request
type RequestConfig struct {
	// BaseURL is the catalog API root (default DefaultBaseURL)
	BaseURL string

	// APIKey is sent as X-RapidAPI-Key
	APIKey string

	// Host is sent as X-RapidAPI-Host (default DefaultHost)
	Host string

	// Timeout bounds each request; 0 leaves failure to the transport
	Timeout time.Duration
}

// Client reads categories and plants from the catalog API.
// It is safe for concurrent use; its configuration never changes after NewClient.
type Client struct {
	config RequestConfig
	doer   Doer
}

// NewClient creates a catalog client.
// Empty BaseURL and Host fall back to the defaults. A nil doer uses a
// plain *http.Client without a client-level timeout.
func NewClient(cfg RequestConfig, doer Doer) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{config: cfg, doer: doer}
}

// Config returns a copy of the client's request configuration
func (c *Client) Config() RequestConfig {
	return c.config
}

// CategoriesURL returns the category list endpoint
func (c *Client) CategoriesURL() string {
	return c.config.BaseURL + categoriesPath
}

// CategoryURL returns the item endpoint for one category.
// The name becomes a single escaped path segment.
func (c *Client) CategoryURL(name string) string {
	return c.config.BaseURL + categoryPath + url.PathEscape(name)
}

// Categories retrieves the full category list in API order
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	body, err := c.get(ctx, c.CategoriesURL())
	if err != nil {
		return nil, err
	}
	return ParseCategories(body)
}

// PlantsByCategory retrieves the plants of one category in API order
func (c *Client) PlantsByCategory(ctx context.Context, name string) ([]Item, error) {
	body, err := c.get(ctx, c.CategoryURL(name))
	if err != nil {
		return nil, err
	}
	return ParseItems(body)
}

// get performs a single GET with the fixed headers and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", rawURL, err)
	}
	req.Header.Set(HeaderAPIKey, c.config.APIKey)
	req.Header.Set(HeaderHost, c.config.Host)

	requestID := uuid.NewString()
	logging.LogRequest(requestID, req.Method, rawURL)
	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		logging.Warn("Catalog request failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, NewNetworkError("GET request failed", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogResponse(requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewStatusError(resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", rawURL, err)
	}
	return body, nil
}
