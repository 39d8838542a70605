package mock

import (
	"context"

	"github.com/jboczar/digest"
)

var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of digest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, opts digest.SummarizeOptions) (*digest.SummaryResult, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, opts digest.SummarizeOptions) (*digest.SummaryResult, error) {
	return s.SummarizeFn(ctx, text, opts)
}
