// Package htmltomarkdown provides a digest.Converter backed by
// html-to-markdown. Headings, lists, tables, and code blocks in extracted or
// AI-generated HTML are converted to their Markdown equivalents.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/jboczar/digest"
)

// Ensure Converter implements digest.Converter at compile time.
var _ digest.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Plain text without markup
// passes through unchanged, so summaries that arrive as plain prose are
// safe to convert unconditionally.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", digest.WrapErrorf(err, digest.EINTERNAL, "markdown conversion failed")
	}

	return result, nil
}
