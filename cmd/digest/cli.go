package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jboczar/digest"
	"github.com/jboczar/digest/pipeline"
	"github.com/rs/zerolog"
)

// Dependencies holds the wired pipeline and I/O for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
	Logger   zerolog.Logger
}

// CLI defines the command-line interface structure for Kong.
// digest is a single-command tool: URL in, Markdown summary file out.
type CLI struct {
	URL string `arg:"" help:"Article URL (scheme optional, https assumed)"`

	Length    string `short:"l" default:"${length}" enum:"short,medium,long" help:"Summary length"`
	KeyPoints bool   `default:"true" negatable:"" help:"Ask for a key-points section"`
	Strict    bool   `help:"Abort on summarization failure instead of writing a placeholder"`

	Output    string `short:"o" help:"Output file path (default: <output dir>/<title slug>.md)" type:"path"`
	OutputDir string `default:"${output_dir}" help:"Output directory for derived filenames"`

	Provider string `default:"${provider}" enum:"gemini,openai" help:"AI provider"`
	Model    string `default:"${model}" help:"Override the provider's default model"`
	APIKey   string `help:"AI service API key (falls back to env and config file)"`

	Engine        string   `default:"${engine}" enum:"heuristic,readability,trafilatura" help:"Content extraction engine"`
	IncludeImages bool     `help:"Keep images in the extracted content"`
	PreserveLinks bool     `help:"Keep links in the extracted content"`
	Remove        []string `short:"r" placeholder:"SELECTOR" help:"Extra CSS selectors to strip (repeatable)"`

	Timeout time.Duration `default:"${timeout}" help:"Fetch timeout per attempt"`
	Retries int           `default:"${retries}" help:"Fetch retries after a failed attempt"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the summarization pipeline.
func (c *CLI) Run(deps *Dependencies) error {
	length, err := digest.ParseLength(c.Length)
	if err != nil {
		return err
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.URL, pipeline.Options{
		Extract: digest.ExtractOptions{
			RemoveSelectors: c.Remove,
			IncludeImages:   c.IncludeImages,
			PreserveLinks:   c.PreserveLinks,
		},
		Summarize: digest.SummarizeOptions{
			Length:           length,
			IncludeKeyPoints: c.KeyPoints,
		},
		OutputPath: c.Output,
	})
	if err != nil {
		return err
	}

	if result.Summary.Degraded() {
		fmt.Fprintln(deps.Stderr, "warning: summarization failed, wrote placeholder summary")
	}
	fmt.Fprintf(deps.Stdout, "Summary written to %s\n", result.OutputPath)

	return nil
}
