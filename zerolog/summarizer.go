package zerolog

import (
	"context"
	"time"

	"github.com/jboczar/digest"
	"github.com/rs/zerolog"
)

// Ensure Summarizer implements digest.Summarizer at compile time.
var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer wraps a digest.Summarizer with debug logging around each call.
type Summarizer struct {
	next   digest.Summarizer
	logger zerolog.Logger
}

// NewSummarizer creates a new logging Summarizer decorator.
func NewSummarizer(next digest.Summarizer, logger zerolog.Logger) *Summarizer {
	return &Summarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer, logging word counts,
// duration, and whether the result was degraded.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts digest.SummarizeOptions) (*digest.SummaryResult, error) {
	begin := time.Now()
	result, err := s.next.Summarize(ctx, text, opts)
	if err != nil {
		s.logger.Error().
			Err(err).
			Dur("duration", time.Since(begin)).
			Msg("summarization failed")
		return nil, err
	}

	s.logger.Debug().
		Int("originalWords", result.OriginalWordCount).
		Int("summaryWords", result.SummaryWordCount).
		Bool("degraded", result.Degraded()).
		Str("length", string(opts.Length)).
		Dur("duration", time.Since(begin)).
		Msg("summarized")
	return result, nil
}
