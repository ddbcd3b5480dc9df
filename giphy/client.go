package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MaxLimit is the largest page size the Giphy API accepts. Larger requested
// limits, including misconfigured defaults, are clamped to it.
const MaxLimit = 50

// validRatings is the closed content-rating vocabulary accepted on input
var validRatings = map[string]bool{
	"g":     true,
	"pg":    true,
	"pg-13": true,
	"r":     true,
}

// Client is a resilient Giphy search client. It owns a lazily built pooled
// HTTP client shared by all calls and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	opts    clientOptions
	logger  zerolog.Logger

	mu         sync.Mutex
	httpClient *http.Client
}

// NewClient creates a new Giphy client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL: strings.TrimRight(options.baseURL, "/"),
		apiKey:  apiKey,
		opts:    options,
		logger:  logger,
	}, nil
}

// SearchOptions are per-call overrides for Search. Zero values fall back to
// the client defaults.
type SearchOptions struct {
	Limit  int
	Offset int
	Rating string
	Lang   string
}

// Search executes one search operation end-to-end: parameter validation,
// bounded-attempt HTTP call with linear backoff, response validation and
// transform. It never returns a raw transport error; every failure path is
// classified into the Failure variant of the envelope.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) Result {
	const op = "search"

	params, err := c.buildParams(query, opts)
	if err != nil {
		c.logger.Error().Err(err).Str("operation", op).Msg("Rejecting invalid search input")
		return Fail(Classify(err, op))
	}

	env, err := c.fetch(ctx, "/search", params)
	if err != nil {
		c.logger.Error().Err(err).Str("operation", op).Msg("Search failed after exhausting attempts")
		return Fail(Classify(err, op))
	}

	items, page := c.transformEnvelope(env)
	return Succeed(items, page, fmt.Sprintf("Found %d GIFs", len(items)))
}

// GetSingle searches for exactly one result. A search that succeeds with zero
// items yields a Success with an explanatory note; absence of a result is not
// an error for this operation.
func (c *Client) GetSingle(ctx context.Context, query string, opts SearchOptions) Result {
	opts.Limit = 1
	opts.Offset = 0

	result := c.Search(ctx, query, opts)
	if result.OK() && len(result.Items()) == 0 {
		return Succeed(nil, result.Page(), "No GIF found for query")
	}
	return result
}

// HealthCheck issues a minimal search and reports boolean health. It never
// propagates a failure; the failure text is carried in Detail instead.
func (c *Client) HealthCheck(ctx context.Context) Health {
	result := c.Search(ctx, "test", SearchOptions{Limit: 1})

	h := Health{
		Healthy:   result.OK(),
		Timestamp: time.Now(),
		Service:   "giphy",
	}
	if f, failed := result.Failure(); failed {
		h.Detail = f.Message
	}
	return h
}

// Close releases the pooled connection resource. It is idempotent; a later
// call on the client lazily reacquires a fresh pool.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
	}
	return nil
}

// buildParams validates caller input and assembles the query string. A
// violation here is programmer error and fails fast, before any network
// attempt is made.
func (c *Client) buildParams(query string, opts SearchOptions) (url.Values, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newValidationError("query parameter is required")
	}

	limit := opts.Limit
	if limit == 0 {
		limit = c.opts.limit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if limit < 1 {
		return nil, newValidationError("limit must be an integer between 1 and %d", MaxLimit)
	}

	if opts.Offset < 0 {
		return nil, newValidationError("offset must be a non-negative integer")
	}

	rating := opts.Rating
	if rating == "" {
		rating = c.opts.rating
	}
	if !validRatings[rating] {
		return nil, newValidationError("rating must be one of: g, pg, pg-13, r")
	}

	lang := opts.Lang
	if lang == "" {
		lang = c.opts.lang
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	params.Set("rating", rating)
	params.Set("lang", lang)
	return params, nil
}

// fetch performs the bounded-attempt request loop. Attempts are strictly
// sequential; between attempts it sleeps retryDelay scaled by the attempt
// number, abandoning the wait if the context ends. The last attempt's error,
// not the first, is the one returned for classification.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (*searchEnvelope, error) {
	var lastErr error

	for attempt := 1; attempt <= c.opts.retryAttempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * c.opts.retryDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		env, err := c.doRequest(ctx, endpoint, params)
		if err == nil {
			return env, nil
		}
		lastErr = err

		c.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", c.opts.retryAttempts).
			Msg("Giphy request failed")
	}

	return nil, lastErr
}

// doRequest performs a single attempt, bounded by the per-attempt timeout
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*searchEnvelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gifrelay/1.0")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("query", params.Get("q")).
		Msg("Making Giphy API request")

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Giphy wraps operational failures inside an HTTP 200 envelope; a non-200
	// meta.status is an API-level error distinct from the transport status.
	if env.Meta.Status != http.StatusOK {
		msg := env.Meta.Msg
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &APIError{StatusCode: env.Meta.Status, Message: msg}
	}

	return &env, nil
}

// getHTTPClient returns the shared pooled client, building it on first use.
// The pool caps bound total and per-host concurrent connections.
func (c *Client) getHTTPClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil {
		if c.opts.httpClient != nil {
			c.httpClient = c.opts.httpClient
		} else {
			c.httpClient = &http.Client{
				Transport: &http.Transport{
					MaxIdleConns:        c.opts.maxConns,
					MaxConnsPerHost:     c.opts.maxConnsPerHost,
					MaxIdleConnsPerHost: c.opts.maxConnsPerHost,
					IdleConnTimeout:     90 * time.Second,
				},
			}
		}
	}
	return c.httpClient
}
