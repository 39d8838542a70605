package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/jboczar/digest"
	"github.com/jboczar/digest/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Sample Page</title></head><body>
		<nav>Home | About</nav>
		<article>
			<h1>Sample Page</h1>
			<p>` + strings.Repeat("Real article body text with substance. ", 20) + `</p>
		</article>
	</body></html>`

	e := trafilatura.NewExtractor()
	content, err := e.Extract(html, "https://example.com/sample", digest.ExtractOptions{})

	require.NoError(t, err)
	assert.Contains(t, content.PlainText, "Real article body text")
	assert.NotContains(t, content.PlainText, "Home | About")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	e := trafilatura.NewExtractor()
	content, err := e.Extract("", "https://example.com", digest.ExtractOptions{})

	require.NoError(t, err)
	assert.Empty(t, content.PlainText)
}

var _ digest.Extractor = (*trafilatura.Extractor)(nil)
