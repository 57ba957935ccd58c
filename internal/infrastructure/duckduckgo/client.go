// Package duckduckgo fetches search phrase suggestions from the DuckDuckGo
// autocomplete endpoint.
package duckduckgo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/logging"
)

const (
	// DefaultEndpoint is the public autocomplete endpoint.
	DefaultEndpoint = "https://duckduckgo.com/ac/"

	maxResponseBytes = 1 << 20
	userAgent        = "tilde (+https://github.com/hH-13/tilde)"
)

// ErrUnexpectedStatus is returned for non-200 responses.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Config configures the client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	// RatePerSecond throttles requests; 0 disables throttling.
	RatePerSecond float64
	Burst         int
	// CacheTTL keeps responses per query; 0 disables the cache.
	CacheTTL time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithClock replaces the clock driving the response cache.
func WithClock(clock clockwork.Clock) Option {
	return func(cl *Client) { cl.clock = clock }
}

// Client implements port.PhraseFetcher.
type Client struct {
	endpoint *url.URL
	timeout  time.Duration
	http     *http.Client
	limiter  *rate.Limiter
	clock    clockwork.Clock
	cache    *phraseCache
}

var _ port.PhraseFetcher = (*Client)(nil)

// NewClient creates a client for cfg.Endpoint.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid suggestion endpoint %q", endpoint)
	}

	c := &Client{
		endpoint: u,
		timeout:  cfg.Timeout,
		http:     http.DefaultClient,
		clock:    clockwork.NewRealClock(),
	}
	if cfg.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1))
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = newPhraseCache(c.clock, cfg.CacheTTL)
	return c, nil
}

// FetchPhrases returns the phrases suggested for query, in endpoint order.
func (c *Client) FetchPhrases(ctx context.Context, query string) ([]string, error) {
	log := logging.FromContext(ctx)

	if phrases, ok := c.cache.get(query); ok {
		log.Trace().Str("query", query).Msg("phrase cache hit")
		return phrases, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	phrases, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}

	c.cache.put(query, phrases)
	log.Debug().Str("query", query).Int("phrases", len(phrases)).Msg("phrases fetched")
	return phrases, nil
}

func (c *Client) get(ctx context.Context, query string) ([]string, error) {
	u := *c.endpoint
	params := u.Query()
	params.Set("q", query)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return decodePhrases(body)
}

// decodePhrases accepts both response shapes of the endpoint:
// [{"phrase": "..."}] and the OpenSearch form ["query", ["...", ...]].
func decodePhrases(body []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(raw) == 0 {
		return []string{}, nil
	}

	var first string
	if json.Unmarshal(raw[0], &first) == nil {
		var list []string
		if len(raw) > 1 {
			if err := json.Unmarshal(raw[1], &list); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nonEmpty(list), nil
	}

	phrases := make([]string, 0, len(raw))
	for _, item := range raw {
		var entry struct {
			Phrase string `json:"phrase"`
		}
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		phrases = append(phrases, entry.Phrase)
	}
	return nonEmpty(phrases), nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
