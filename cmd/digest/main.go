package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/jboczar/digest"
	"github.com/jboczar/digest/fs"
	"github.com/jboczar/digest/gemini"
	"github.com/jboczar/digest/goquery"
	"github.com/jboczar/digest/htmltomarkdown"
	dighttp "github.com/jboczar/digest/http"
	"github.com/jboczar/digest/openai"
	"github.com/jboczar/digest/pipeline"
	"github.com/jboczar/digest/readability"
	"github.com/jboczar/digest/trafilatura"
	digzerolog "github.com/jboczar/digest/zerolog"
	"github.com/rs/zerolog"
	openaiapi "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if digest.ErrorCode(err) != digest.EINTERNAL {
			fmt.Fprintf(os.Stderr, "Error: %s\n", digest.ErrorMessage(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: ConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("digest"),
		kong.Description("Summarize a web article into a Markdown document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars(configVars(cfg)),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'digest --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()
	deps.Logger = logger

	var progress digest.ProgressFunc = func(p digest.Progress) {
		fmt.Fprintf(stderr, "%s...\n", p.Message)
	}

	fetcherOpts := []dighttp.Option{
		dighttp.WithTimeout(cli.Timeout),
		dighttp.WithRetries(cli.Retries),
		dighttp.WithLogger(logger),
	}
	if cfg.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, dighttp.WithUserAgent(cfg.UserAgent))
	}
	fetcher := dighttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()

	var extractor digest.Extractor
	switch cli.Engine {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	summarizer, err := m.summarizer(ctx, cli, cfg, logger)
	if err != nil {
		return err
	}

	deps.Pipeline = &pipeline.Pipeline{
		Fetcher:    digzerolog.NewFetcher(fetcher, logger),
		Extractor:  extractor,
		Summarizer: digzerolog.NewSummarizer(summarizer, logger),
		Converter:  htmltomarkdown.NewConverter(),
		Writer:     fs.NewWriter(cli.OutputDir),
		Logger:     logger,
		Progress:   progress,
	}

	return kongCtx.Run(deps)
}

// summarizer builds the AI summarizer for the selected provider.
func (m *Main) summarizer(ctx context.Context, cli *CLI, cfg *Config, logger zerolog.Logger) (digest.Summarizer, error) {
	apiKey, err := ResolveAPIKey(cli.APIKey, cli.Provider, cfg)
	if err != nil {
		return nil, err
	}

	switch cli.Provider {
	case "openai":
		opts := []openai.Option{openai.WithLogger(logger)}
		if cli.Model != "" {
			opts = append(opts, openai.WithModel(cli.Model))
		}
		if cli.Strict {
			opts = append(opts, openai.WithStrictFailures())
		}
		return openai.NewSummarizer(openaiapi.NewClient(apiKey), opts...), nil

	default:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, digest.WrapErrorf(err, digest.EAPI, "failed to connect to Gemini API")
		}
		opts := []gemini.Option{gemini.WithLogger(logger)}
		if cli.Model != "" {
			opts = append(opts, gemini.WithModel(cli.Model))
		}
		if cli.Strict {
			opts = append(opts, gemini.WithStrictFailures())
		}
		return gemini.NewSummarizer(client, opts...), nil
	}
}

// configVars maps config file values onto Kong flag defaults, falling back
// to the built-in defaults where the config is silent.
func configVars(cfg *Config) kong.Vars {
	vars := kong.Vars{
		"length":     "medium",
		"engine":     "heuristic",
		"output_dir": fs.DefaultDirName,
		"provider":   "gemini",
		"model":      "",
		"timeout":    dighttp.DefaultTimeout.String(),
		"retries":    strconv.Itoa(dighttp.DefaultRetries),
	}
	if cfg.Length != "" {
		vars["length"] = cfg.Length
	}
	if cfg.Engine != "" {
		vars["engine"] = cfg.Engine
	}
	if cfg.OutputDir != "" {
		vars["output_dir"] = cfg.OutputDir
	}
	if cfg.Provider != "" {
		vars["provider"] = cfg.Provider
	}
	if cfg.Model != "" {
		vars["model"] = cfg.Model
	}
	if cfg.Timeout != "" {
		vars["timeout"] = cfg.Timeout
	}
	if cfg.Retries != nil {
		vars["retries"] = strconv.Itoa(*cfg.Retries)
	}
	return vars
}
