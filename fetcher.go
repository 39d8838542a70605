package digest

import "context"

// FetchResult holds the raw HTML retrieved for a URL.
type FetchResult struct {
	// HTML is the raw response body.
	HTML string

	// SourceURL is the normalized URL the fetch was issued against.
	SourceURL string

	// Metadata carries response details such as the final URL after
	// redirects, the HTTP status, and the content type.
	Metadata map[string]string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML document at url. The URL is normalized
	// before the request: a missing scheme defaults to https. The context
	// controls cancellation; timeouts and retries are configured on the
	// implementation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
