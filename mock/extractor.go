package mock

import "github.com/jboczar/digest"

var _ digest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of digest.Extractor.
type Extractor struct {
	ExtractFn func(html string, url string, opts digest.ExtractOptions) (*digest.ExtractedContent, error)
}

func (e *Extractor) Extract(html string, url string, opts digest.ExtractOptions) (*digest.ExtractedContent, error) {
	return e.ExtractFn(html, url, opts)
}
