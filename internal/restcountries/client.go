package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CountryFetcher defines the interface for loading the country collection.
// This interface is implemented by *Client and can be used for testing.
type CountryFetcher interface {
	FetchCountries(ctx context.Context) ([]Country, error)
}

// Ensure Client implements CountryFetcher at compile time.
var _ CountryFetcher = (*Client)(nil)

// Client talks to the REST Countries HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

const (
	// DefaultEndpoint is the collection endpoint used when none is configured.
	DefaultEndpoint = "https://restcountries.com/v3.1/all"

	// Fields is the fixed projection requested from the API.
	Fields = "name,region,capital,population,flags,languages,currencies"

	defaultUserAgent = "atlas/0.1"
	defaultTimeout   = 15 * time.Second
)

// NewClient builds a Client for the given collection endpoint. A zero timeout
// uses the default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// WithLogger returns the client with fetch events sent to logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Endpoint returns the full request URL including the field projection.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// FetchCountries retrieves the full collection and returns it sorted by name.
// Every failure is reported as a *FetchError.
func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	started := time.Now()

	var payload []Country
	if err := c.get(ctx, &payload); err != nil {
		c.logger.Warn("countries fetch failed", "url", c.Endpoint(), "error", err)
		return nil, err
	}

	SortByName(payload)
	c.logger.Info("countries fetched",
		"url", c.Endpoint(),
		"count", len(payload),
		"duration", time.Since(started))
	return payload, nil
}

func (c *Client) get(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return &FetchError{Stage: StageRequest, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Stage: StageRequest, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{
			Stage:      StageStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("api %s returned status %d", c.endpoint.Path, resp.StatusCode),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{Stage: StageDecode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", endpoint)
	}
	values := u.Query()
	values.Set("fields", Fields)
	u.RawQuery = values.Encode()
	u.Fragment = ""
	return u, nil
}
