// Package trafilatura provides a digest.Extractor backed by go-trafilatura,
// an alternative to the heuristic goquery engine. Cleaning is delegated to
// the library, so ExtractOptions selector overrides do not apply here.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/jboczar/digest"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL string, opts digest.ExtractOptions) (*digest.ExtractedContent, error) {
	if rawHTML == "" {
		return &digest.ExtractedContent{}, nil
	}

	topts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  opts.IncludeImages,
		IncludeLinks:   opts.PreserveLinks,
	}
	if u, err := url.Parse(pageURL); err == nil {
		topts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), topts)
	if err != nil {
		return nil, digest.WrapErrorf(err, digest.EEXTRACT, "extraction failed")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, digest.WrapErrorf(err, digest.EINTERNAL, "failed to render content")
		}
	}

	content := &digest.ExtractedContent{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		PlainText:   strings.TrimSpace(result.ContentText),
		Excerpt:     result.Metadata.Description,
		Author:      result.Metadata.Author,
	}
	if !result.Metadata.Date.IsZero() {
		date := result.Metadata.Date
		content.PublishedAt = &date
	}

	return content, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
