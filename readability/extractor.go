// Package readability provides a digest.Extractor backed by go-readability,
// an alternative to the heuristic goquery engine for pages with dense or
// unusual markup. Cleaning is delegated to the library, so ExtractOptions
// selector overrides do not apply here.
package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/jboczar/digest"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL string, _ digest.ExtractOptions) (*digest.ExtractedContent, error) {
	if rawHTML == "" {
		return &digest.ExtractedContent{}, nil
	}

	u, _ := url.Parse(pageURL)

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, digest.WrapErrorf(err, digest.EINVALID, "failed to parse HTML")
	}

	return &digest.ExtractedContent{
		Title:       article.Title,
		ContentHTML: article.Content,
		PlainText:   strings.TrimSpace(article.TextContent),
		Excerpt:     article.Excerpt,
		Author:      article.Byline,
		PublishedAt: article.PublishedTime,
	}, nil
}
