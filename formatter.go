package digest

import (
	"strings"
	"time"
)

// Metadata identifies the source of a rendered document.
type Metadata struct {
	Title string
	URL   string
	Date  time.Time
}

// Document is the final rendered artifact.
type Document struct {
	// Body is the full Markdown text of the document.
	Body string

	// Meta is the metadata the document was rendered with.
	Meta Metadata
}

// DocumentWriter persists rendered documents to storage.
type DocumentWriter interface {
	// WriteDocument writes the document as UTF-8 text and returns the path
	// it was written to. When path is empty the implementation derives one
	// from the document metadata.
	WriteDocument(doc *Document, path string) (string, error)
}

// RenderDocument assembles the final Markdown document: an optional title
// heading, an Article Information section with the source link and a
// human-readable summarization date, a separator, the summary body, and the
// key points if any. Identical inputs produce byte-identical output.
func RenderDocument(sum *SummaryResult, meta Metadata) *Document {
	var b strings.Builder

	if meta.Title != "" {
		b.WriteString("# ")
		b.WriteString(meta.Title)
		b.WriteString("\n\n")
	}

	b.WriteString("## Article Information\n\n")
	b.WriteString("- **Source**: [")
	b.WriteString(meta.URL)
	b.WriteString("](")
	b.WriteString(meta.URL)
	b.WriteString(")\n")
	b.WriteString("- **Summarized**: ")
	b.WriteString(meta.Date.Format("January 2, 2006"))
	b.WriteString("\n\n---\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString(strings.TrimSpace(sum.Summary))
	b.WriteString("\n")

	if len(sum.KeyPoints) > 0 {
		b.WriteString("\n## Key Points\n\n")
		for _, point := range sum.KeyPoints {
			b.WriteString("- ")
			b.WriteString(point)
			b.WriteString("\n")
		}
	}

	return &Document{Body: b.String(), Meta: meta}
}
