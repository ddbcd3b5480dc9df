package giphy

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL         string
	timeout         time.Duration
	retryAttempts   int
	retryDelay      time.Duration
	limit           int
	rating          string
	lang            string
	maxConns        int
	maxConnsPerHost int
	httpClient      *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:         "https://api.giphy.com/v1/gifs",
		timeout:         5 * time.Second,
		retryAttempts:   3,
		retryDelay:      time.Second,
		limit:           10,
		rating:          "pg",
		lang:            "en",
		maxConns:        100,
		maxConnsPerHost: 20,
	}
}

// WithBaseURL overrides the upstream API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the total per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryAttempts sets the total number of attempts per operation.
func WithRetryAttempts(attempts int) Option {
	return func(o *clientOptions) {
		if attempts > 0 {
			o.retryAttempts = attempts
		}
	}
}

// WithRetryDelay sets the base delay between retry attempts. The actual delay
// is scaled linearly by the attempt number.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}

// WithDefaultLimit sets the result limit used when a search does not specify
// one. Values above the API maximum are clamped at request time.
func WithDefaultLimit(limit int) Option {
	return func(o *clientOptions) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// WithDefaultRating sets the content rating used when a search does not
// specify one.
func WithDefaultRating(rating string) Option {
	return func(o *clientOptions) {
		if rating != "" {
			o.rating = rating
		}
	}
}

// WithDefaultLang sets the language code used when a search does not specify
// one.
func WithDefaultLang(lang string) Option {
	return func(o *clientOptions) {
		if lang != "" {
			o.lang = lang
		}
	}
}

// WithMaxConns caps the size of the pooled connection resource.
func WithMaxConns(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.maxConns = n
		}
	}
}

// WithMaxConnsPerHost caps concurrent connections to a single upstream host.
func WithMaxConnsPerHost(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.maxConnsPerHost = n
		}
	}
}

// WithHTTPClient sets a custom HTTP client, replacing the lazily built pooled
// one. Close still releases its idle connections.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
