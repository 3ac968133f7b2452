package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/holocron/internal/logging"
)

// Client defaults.
const (
	DefaultBaseURL   = "https://swapi.dev/api"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "holocron"

	peoplePath = "/people/"

	// maxErrorBody bounds how much of an error body is read for logging.
	maxErrorBody = 512
)

// Client talks to the SWAPI people endpoint.
type Client struct {
	baseURL   string
	http      *http.Client
	timeout   time.Duration
	userAgent string
	logger    zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. an httptest server URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to a copy of the
// HTTP client, whichever order the options are given in.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.ComponentLogger(logger, "swapi")
	}
}

// NewClient creates a Client with the given options applied over defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PeopleURL builds the listing URL for query and page. The search parameter
// is omitted for an empty query.
func (c *Client) PeopleURL(query string, page int) string {
	params := url.Values{}
	if query != "" {
		params.Set("search", query)
	}
	params.Set("page", strconv.Itoa(page))
	return c.baseURL + peoplePath + "?" + params.Encode()
}

// ListPeople fetches one page of characters matching query.
func (c *Client) ListPeople(ctx context.Context, query string, page int) (*PeoplePage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	target := c.PeopleURL(query, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Ctx(ctx).Err(err).Str("url", target).Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().Ctx(ctx).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn().Ctx(ctx).
			Str("url", target).
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("unexpected status")
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}

	var result PeoplePage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if result.Results == nil {
		result.Results = []Character{}
	}
	return &result, nil
}
