package readability_test

import (
	"strings"
	"testing"

	"github.com/jboczar/digest"
	"github.com/jboczar/digest/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Test Article</title></head><body>
		<nav>Navigation links</nav>
		<article>
			<h1>Test Article</h1>
			<p>` + strings.Repeat("This is the main content of the article. ", 20) + `</p>
		</article>
		<footer>Footer text</footer>
	</body></html>`

	e := readability.NewExtractor()
	content, err := e.Extract(html, "https://example.com/test", digest.ExtractOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Test Article", content.Title)
	assert.Contains(t, content.PlainText, "main content of the article")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	e := readability.NewExtractor()
	content, err := e.Extract("", "https://example.com", digest.ExtractOptions{})

	require.NoError(t, err)
	assert.Empty(t, content.PlainText)
}

var _ digest.Extractor = (*readability.Extractor)(nil)
