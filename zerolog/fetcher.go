// Package zerolog provides logging decorators for pipeline stage
// implementations.
package zerolog

import (
	"context"
	"time"

	"github.com/jboczar/digest"
	"github.com/rs/zerolog"
)

// Ensure Fetcher implements digest.Fetcher at compile time.
var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a digest.Fetcher with debug logging around each fetch.
type Fetcher struct {
	next   digest.Fetcher
	logger zerolog.Logger
}

// NewFetcher creates a new logging Fetcher decorator.
func NewFetcher(next digest.Fetcher, logger zerolog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging duration and outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*digest.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("url", url).
			Dur("duration", time.Since(begin)).
			Msg("fetch failed")
		return nil, err
	}

	f.logger.Debug().
		Str("url", url).
		Int("bytes", len(result.HTML)).
		Dur("duration", time.Since(begin)).
		Msg("fetched")
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
