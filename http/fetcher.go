// Package http provides an HTTP-based implementation of digest.Fetcher
// with URL normalization, retries, and content-type validation.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jboczar/digest"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the default timeout for a single HTTP request.
const DefaultTimeout = 30 * time.Second

// DefaultRetries is the default number of retries after a failed attempt.
const DefaultRetries = 3

// DefaultUserAgent identifies the fetcher to servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; digest/1.0; +https://github.com/jboczar/digest)"

// maxRedirects caps redirect following to avoid loops.
const maxRedirects = 5

// Ensure Fetcher implements digest.Fetcher at compile time.
var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP GET.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	retries   int
	userAgent string
	delays    []time.Duration
	logger    zerolog.Logger
	progress  digest.ProgressFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets the number of retries after a failed attempt, so a fetch
// makes at most retries+1 attempts. Defaults to DefaultRetries.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = n
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays overrides the backoff delays between attempts.
// This is useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn digest.ProgressFunc) Option {
	return func(f *Fetcher) {
		f.progress = fn
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		retries:   DefaultRetries,
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.delays == nil {
		f.delays = digest.Backoff(f.retries)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return f
}

// NormalizeURL prepends https:// to scheme-less URLs and validates the
// result parses as an absolute HTTP(S) URL with a host.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", digest.Errorf(digest.EINVALID, "URL required")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", digest.WrapErrorf(err, digest.EINVALID, "invalid URL %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", digest.Errorf(digest.EINVALID, "invalid URL %q", raw)
	}

	return u.String(), nil
}

// Fetch retrieves the HTML document at rawURL, retrying failed attempts with
// exponential backoff. Exhausted retries yield an ENETWORK error carrying
// the last cause and the url, timeout, and last HTTP status as context.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*digest.FetchResult, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if f.progress != nil {
		f.progress(digest.Progress{Stage: digest.StageFetch, Message: "fetching " + normalized})
	}

	var result *digest.FetchResult
	lastStatus := 0
	invalidResponse := false

	op := func(ctx context.Context) error {
		res, status, err := f.fetchOnce(ctx, normalized)
		lastStatus = status
		if err != nil {
			_, invalidResponse = err.(*contentTypeError)
			return err
		}
		result = res
		return nil
	}

	notify := func(attempt int, err error) {
		f.logger.Warn().
			Err(err).
			Str("url", normalized).
			Int("attempt", attempt).
			Msg("fetch failed, retrying")
	}

	if err := digest.Retry(ctx, f.delays, op, notify); err != nil {
		msg := "failed to fetch %s"
		if invalidResponse {
			msg = "invalid response from %s"
		}
		derr := digest.WrapErrorf(err, digest.ENETWORK, msg, normalized).
			WithContext("url", normalized).
			WithContext("timeout", f.timeout.String())
		if lastStatus > 0 {
			derr = derr.WithContext("status", lastStatus)
		}
		return nil, derr
	}

	return result, nil
}

// fetchOnce performs a single GET attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*digest.FetchResult, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		return nil, resp.StatusCode, &contentTypeError{contentType: contentType}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return &digest.FetchResult{
		HTML:      string(body),
		SourceURL: url,
		Metadata: map[string]string{
			"finalURL":    resp.Request.URL.String(),
			"status":      strconv.Itoa(resp.StatusCode),
			"contentType": contentType,
		},
	}, resp.StatusCode, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// contentTypeError marks a successful response with a non-HTML body.
type contentTypeError struct {
	contentType string
}

func (e *contentTypeError) Error() string {
	return fmt.Sprintf("non-HTML content type %q", e.contentType)
}

// isHTMLContentType reports whether the Content-Type header denotes an HTML
// media type.
func isHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml")
}
