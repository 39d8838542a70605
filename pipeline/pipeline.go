// Package pipeline orchestrates the article summarization flow:
// fetch, extract, summarize, render, write. Stages run strictly
// sequentially and each consumes only the previous stage's output.
package pipeline

import (
	"context"
	"time"

	"github.com/jboczar/digest"
	"github.com/rs/zerolog"
)

// Pipeline wires the stage implementations together. All fields except
// Logger, Progress, and Now are required.
type Pipeline struct {
	Fetcher    digest.Fetcher
	Extractor  digest.Extractor
	Summarizer digest.Summarizer
	Converter  digest.Converter
	Writer     digest.DocumentWriter

	Logger   zerolog.Logger
	Progress digest.ProgressFunc

	// Now is the clock used for the summarization date in the rendered
	// document. Defaults to time.Now; injectable for deterministic tests.
	Now func() time.Time
}

// Options configure a single pipeline run.
type Options struct {
	Extract   digest.ExtractOptions
	Summarize digest.SummarizeOptions

	// OutputPath is the explicit output file path. Empty derives a path
	// from the article title.
	OutputPath string
}

// Result reports what a pipeline run produced.
type Result struct {
	// OutputPath is the path the document was written to.
	OutputPath string

	// Content is the extracted article content.
	Content *digest.ExtractedContent

	// Summary is the summarization result, possibly degraded.
	Summary *digest.SummaryResult
}

// Run executes the full pipeline for one URL. Fetch, render, and write
// failures abort the run with classified errors; summarization failures
// follow the Summarizer's own policy (degrade or strict). The output file
// is written only after every upstream stage has succeeded.
func (p *Pipeline) Run(ctx context.Context, url string, opts Options) (*Result, error) {
	p.report(digest.StageFetch, "fetching "+url)
	fetched, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	p.report(digest.StageExtract, "extracting content")
	content, err := p.Extractor.Extract(fetched.HTML, fetched.SourceURL, opts.Extract)
	if err != nil {
		return nil, err
	}

	var summary *digest.SummaryResult
	if content.PlainText == "" {
		// Nothing to summarize; substitute the degraded placeholder
		// instead of sending an empty prompt to the AI service.
		p.Logger.Warn().Str("url", fetched.SourceURL).Msg("no content extracted")
		summary = &digest.SummaryResult{Summary: digest.DegradedSummaryMessage}
	} else {
		p.report(digest.StageSummarize, "summarizing content")
		summary, err = p.Summarizer.Summarize(ctx, content.PlainText, opts.Summarize)
		if err != nil {
			return nil, err
		}
	}

	p.report(digest.StageRender, "rendering document")
	rendered := *summary
	if p.Converter != nil && !summary.Degraded() {
		converted, err := p.Converter.Convert(summary.Summary)
		if err != nil {
			return nil, err
		}
		rendered.Summary = converted
	}

	doc := digest.RenderDocument(&rendered, digest.Metadata{
		Title: content.Title,
		URL:   fetched.SourceURL,
		Date:  p.now(),
	})

	p.report(digest.StageWrite, "writing document")
	path, err := p.Writer.WriteDocument(doc, opts.OutputPath)
	if err != nil {
		return nil, err
	}

	p.Logger.Info().
		Str("url", fetched.SourceURL).
		Str("path", path).
		Int("originalWords", summary.OriginalWordCount).
		Int("summaryWords", summary.SummaryWordCount).
		Bool("degraded", summary.Degraded()).
		Msg("summary written")

	return &Result{OutputPath: path, Content: content, Summary: summary}, nil
}

func (p *Pipeline) report(stage digest.Stage, message string) {
	if p.Progress != nil {
		p.Progress(digest.Progress{Stage: stage, Message: message})
	}
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
