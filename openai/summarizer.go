// Package openai provides a digest.Summarizer for OpenAI-compatible chat
// completion endpoints, including local inference servers that expose the
// same API.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/jboczar/digest"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = openai.GPT4oMini

// defaultRetries is the fixed retry budget for summarization calls.
const defaultRetries = 3

// Ensure Summarizer implements digest.Summarizer at compile time.
var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer implements digest.Summarizer using the OpenAI chat completions
// API. The client handle is constructed once per process and injected.
type Summarizer struct {
	client  *openai.Client
	model   string
	delays  []time.Duration
	degrade bool
	logger  zerolog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel overrides the chat model.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithRetryDelays overrides the backoff delays between attempts.
// This is useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Summarizer) {
		s.delays = delays
	}
}

// WithStrictFailures makes exhausted retries return an EAPI error instead
// of a degraded placeholder result.
func WithStrictFailures() Option {
	return func(s *Summarizer) {
		s.degrade = false
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

// NewSummarizer creates a new Summarizer around an existing OpenAI client.
func NewSummarizer(client *openai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{
		client:  client,
		model:   DefaultModel,
		degrade: true,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.delays == nil {
		s.delays = digest.Backoff(defaultRetries)
	}

	return s
}

// Summarize sends the article text to the chat completions endpoint and
// parses the response. Exhausted retries return a degraded SummaryResult
// unless strict failures are enabled, in which case an EAPI error is
// returned.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts digest.SummarizeOptions) (*digest.SummaryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, digest.Errorf(digest.EINVALID, "text required")
	}

	prompt := digest.SummaryInstruction(opts) + "\n\n" + text
	originalWords := digest.CountWords(text)

	var raw string
	op := func(ctx context.Context) error {
		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       s.model,
			Temperature: 0.4,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: digest.SummarySystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return digest.Errorf(digest.EINTERNAL, "empty completion response")
		}
		raw = resp.Choices[0].Message.Content
		return nil
	}

	notify := func(attempt int, err error) {
		s.logger.Warn().
			Err(err).
			Str("model", s.model).
			Int("attempt", attempt).
			Int("inputWords", originalWords).
			Msg("summarization failed, retrying")
	}

	if err := digest.Retry(ctx, s.delays, op, notify); err != nil {
		if !s.degrade {
			return nil, digest.WrapErrorf(err, digest.EAPI, "summarization failed").
				WithContext("model", s.model)
		}
		s.logger.Error().
			Err(err).
			Str("model", s.model).
			Msg("summarization failed, returning degraded result")
		return &digest.SummaryResult{
			Summary:           digest.DegradedSummaryMessage,
			OriginalWordCount: originalWords,
		}, nil
	}

	body, points := digest.ParseSummaryResponse(raw)
	return &digest.SummaryResult{
		Summary:           body,
		KeyPoints:         points,
		OriginalWordCount: originalWords,
		SummaryWordCount:  digest.CountWords(body),
	}, nil
}
