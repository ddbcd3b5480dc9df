// Package gifservice wraps the giphy client for message-driven callers.
//
// The service turns free-form message text into a single representative GIF:
// it extracts keywords, runs a single-result search, and flattens the typed
// envelope into a small primitive-field struct. Every failure and every empty
// result degrades to an absent-result signal; message-driven consumers have
// no use for structured error detail.
package gifservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mpeterson/gifrelay/giphy"
)

// Service defaults, tighter than the raw client's since chat callers are
// latency-sensitive.
const (
	defaultLimit        = 5
	defaultTimeout      = 3 * time.Second
	defaultAttempts     = 2
	defaultBatchWorkers = 10
)

// Service provides high-level GIF operations for bot integration
type Service struct {
	client       *giphy.Client
	logger       zerolog.Logger
	batchWorkers int
}

// New creates a GIF service around a giphy client built with service-tuned
// defaults. Options are applied after the defaults and may override them.
func New(apiKey string, logger zerolog.Logger, opts ...giphy.Option) (*Service, error) {
	clientOpts := append([]giphy.Option{
		giphy.WithDefaultLimit(defaultLimit),
		giphy.WithTimeout(defaultTimeout),
		giphy.WithRetryAttempts(defaultAttempts),
	}, opts...)

	client, err := giphy.NewClient(apiKey, logger, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &Service{
		client:       client,
		logger:       logger,
		batchWorkers: defaultBatchWorkers,
	}, nil
}

// SetBatchWorkers caps how many message lookups BatchForMessages runs
// concurrently. Values below 1 are ignored.
func (s *Service) SetBatchWorkers(n int) {
	if n > 0 {
		s.batchWorkers = n
	}
}

// MessageGif is the flat result shape handed to message-driven consumers
type MessageGif struct {
	ID           string
	Title        string
	URL          string
	PreviewURL   string
	ThumbnailURL string
	Width        int
	Height       int
	Rating       string
	Query        string
}

// SearchSummary is the flat shape for multi-result searches
type SearchSummary struct {
	Query         string
	TotalResults  int
	ReturnedCount int
	Gifs          []MessageGif
}

// ServiceHealth reports the health of the service and its upstream client
type ServiceHealth struct {
	Service        string
	AdapterHealthy bool
	Timestamp      time.Time
	Detail         string
}

// GifForMessage finds one GIF for a user message. The second return value is
// false when no suitable GIF was found for any reason; failures are logged,
// never propagated.
func (s *Service) GifForMessage(ctx context.Context, message string) (*MessageGif, bool) {
	if message == "" {
		s.logger.Warn().Msg("Empty message provided, skipping GIF lookup")
		return nil, false
	}

	query := ExtractKeywords(message)
	s.logger.Debug().Str("query", query).Str("message", message).Msg("Extracted keywords from message")

	result := s.client.GetSingle(ctx, query, giphy.SearchOptions{})
	if failure, failed := result.Failure(); failed {
		s.logger.Error().
			Str("kind", failure.Kind.String()).
			Str("message", failure.Message).
			Str("query", query).
			Msg("GIF lookup failed")
		return nil, false
	}

	items := result.Items()
	if len(items) == 0 {
		s.logger.Info().Str("query", query).Msg("No GIF found for message")
		return nil, false
	}

	gif := flatten(items[0], query)
	return &gif, true
}

// Search runs a multi-result search and flattens it. The second return value
// is false on failure or when nothing was found.
func (s *Service) Search(ctx context.Context, query string, opts giphy.SearchOptions) (*SearchSummary, bool) {
	result := s.client.Search(ctx, query, opts)
	if failure, failed := result.Failure(); failed {
		s.logger.Error().
			Str("kind", failure.Kind.String()).
			Str("message", failure.Message).
			Str("query", query).
			Msg("Search failed")
		return nil, false
	}

	items := result.Items()
	if len(items) == 0 {
		return nil, false
	}

	summary := &SearchSummary{
		Query:         query,
		TotalResults:  result.Page().TotalAvailable,
		ReturnedCount: len(items),
		Gifs:          make([]MessageGif, len(items)),
	}
	for i, item := range items {
		summary.Gifs[i] = flatten(item, query)
	}
	return summary, true
}

// BatchForMessages looks up GIFs for several messages concurrently, bounded
// by the batch worker limit. The returned slice is index-aligned with the
// input; entries with no result are nil.
func (s *Service) BatchForMessages(ctx context.Context, messages []string) []*MessageGif {
	results := make([]*MessageGif, len(messages))
	if len(messages) == 0 {
		return results
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, message := range messages {
		i, message := i, message
		g.Go(func() error {
			if gif, ok := s.GifForMessage(ctx, message); ok {
				results[i] = gif
			}
			return nil
		})
	}

	// Workers never return errors; every miss degrades to a nil entry
	_ = g.Wait()
	return results
}

// HealthCheck reports service health, wrapping the client's check
func (s *Service) HealthCheck(ctx context.Context) ServiceHealth {
	adapter := s.client.HealthCheck(ctx)
	return ServiceHealth{
		Service:        "gif_service",
		AdapterHealthy: adapter.Healthy,
		Timestamp:      adapter.Timestamp,
		Detail:         adapter.Detail,
	}
}

// Close releases the underlying client's connection resources
func (s *Service) Close() error {
	if err := s.client.Close(); err != nil {
		return err
	}
	s.logger.Debug().Msg("GIF service closed")
	return nil
}

func flatten(item giphy.SearchItem, query string) MessageGif {
	return MessageGif{
		ID:           item.ID,
		Title:        item.Title,
		URL:          item.Original.URL,
		PreviewURL:   item.Preview.URL,
		ThumbnailURL: item.Thumbnail.URL,
		Width:        item.Original.Width,
		Height:       item.Original.Height,
		Rating:       item.Rating,
		Query:        query,
	}
}
