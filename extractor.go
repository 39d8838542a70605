package digest

import "time"

// ExtractedContent holds the readable article content pulled out of a page.
type ExtractedContent struct {
	// Title is the resolved article title.
	Title string

	// ContentHTML is the main article body as cleaned HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// PlainText is the visible text of the cleaned content, trimmed.
	PlainText string

	// Excerpt is a short description of the article, if one was found.
	Excerpt string

	// Author is the article author, if one was found.
	Author string

	// PublishedAt is the publish date, if one was found and parseable.
	PublishedAt *time.Time
}

// ExtractOptions configure content extraction.
type ExtractOptions struct {
	// RemoveSelectors are additional CSS selectors stripped from the
	// document before content detection, on top of the default
	// boilerplate set.
	RemoveSelectors []string

	// IncludeImages keeps img elements in the extracted content.
	IncludeImages bool

	// PreserveLinks keeps anchor elements; otherwise links are replaced
	// with their bare text.
	PreserveLinks bool
}

// Extractor extracts main article content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content. The URL is
	// used for fallbacks (e.g. host name as a last-resort title). An empty
	// document yields an empty ExtractedContent rather than an error; only
	// markup the implementation cannot parse fails.
	Extract(html string, url string, opts ExtractOptions) (*ExtractedContent, error)
}
