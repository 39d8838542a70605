package goquery_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jboczar/digest"
	"github.com/jboczar/digest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longText comfortably exceeds the 200-character acceptance threshold for
// semantic containers.
var longText = strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 5)

func extract(t *testing.T, html string, opts digest.ExtractOptions) *digest.ExtractedContent {
	t.Helper()

	content, err := goquery.NewExtractor().Extract(html, "https://example.com/article", opts)
	require.NoError(t, err)
	return content
}

func TestExtractor_TitleResolution(t *testing.T) {
	t.Parallel()

	t.Run("article title heading beats generic h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Site | Page</title></head><body>
			<h1>Generic Heading</h1>
			<h1 class="article-title">The Real Title</h1>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "The Real Title", content.Title)
	})

	t.Run("falls back to any h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Doc Title</title></head><body><h1>Only Heading</h1></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "Only Heading", content.Title)
	})

	t.Run("falls back to document title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Doc Title</title></head><body><p>text</p></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "Doc Title", content.Title)
	})

	t.Run("falls back to URL host", func(t *testing.T) {
		t.Parallel()

		content := extract(t, `<html><body><p>text</p></body></html>`, digest.ExtractOptions{})
		assert.Equal(t, "example.com", content.Title)
	})

	t.Run("collapses whitespace in title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Spread
			Out   Title</h1></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "Spread Out Title", content.Title)
	})
}

func TestExtractor_ContentDetection(t *testing.T) {
	t.Parallel()

	t.Run("semantic article beats denser generic div", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="dense">
				<p>one</p><p>two</p><p>three</p><p>four</p><p>five</p><p>six</p>
			</div>
			<article><p>` + longText + `</p></article>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Contains(t, content.PlainText, "Lorem ipsum")
		assert.NotContains(t, content.PlainText, "three")
	})

	t.Run("short semantic container is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article><p>too short</p></article>
			<div><p>alpha</p><p>beta</p><p>gamma</p><p>delta</p></div>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Contains(t, content.PlainText, "gamma")
		assert.NotContains(t, content.ContentHTML, "<article")
	})

	t.Run("density fallback picks container with most paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="sparse"><p>a</p><p>b</p><p>c</p></div>
			<div id="dense"><p>d</p><p>e</p><p>f</p><p>g</p><p>h</p></div>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Contains(t, content.ContentHTML, `id="dense"`)
	})

	t.Run("density tie keeps first container in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<section id="first"><p>a</p><p>b</p><p>c</p></section>
			<section id="second"><p>d</p><p>e</p><p>f</p></section>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Contains(t, content.ContentHTML, `id="first"`)
	})

	t.Run("density fallback requires more than two paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="thin"><p>a</p><p>b</p></div>
			<p>stray text outside containers</p>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		// Falls through to the whole body.
		assert.Contains(t, content.PlainText, "stray text")
	})

	t.Run("whole body is the last resort", func(t *testing.T) {
		t.Parallel()

		content := extract(t, `<html><body><p>bare paragraph</p></body></html>`, digest.ExtractOptions{})
		assert.Equal(t, "bare paragraph", content.PlainText)
	})

	t.Run("empty document yields empty content without error", func(t *testing.T) {
		t.Parallel()

		content := extract(t, `<html><body></body></html>`, digest.ExtractOptions{})
		assert.Empty(t, content.PlainText)
	})
}

func TestExtractor_BoilerplateRemoval(t *testing.T) {
	t.Parallel()

	t.Run("strips default boilerplate before detection", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav><p>nav one</p><p>nav two</p><p>nav three</p><p>nav four</p></nav>
			<div class="comments"><p>c1</p><p>c2</p><p>c3</p><p>c4</p><p>c5</p></div>
			<article><p>` + longText + `</p></article>
		</body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.NotContains(t, content.PlainText, "nav one")
		assert.NotContains(t, content.PlainText, "c1")
	})

	t.Run("caller selectors are removed too", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<div class="promo">subscribe now</div>
			<p>` + longText + `</p>
		</article></body></html>`

		content := extract(t, html, digest.ExtractOptions{RemoveSelectors: []string{".promo"}})
		assert.NotContains(t, content.PlainText, "subscribe now")
	})
}

func TestExtractor_ContentCleaning(t *testing.T) {
	t.Parallel()

	t.Run("drops empty paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + longText + `</p><p>   </p><p></p></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.NotContains(t, content.ContentHTML, "<p></p>")
	})

	t.Run("drops images by default", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + longText + `</p><img src="x.png"></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.NotContains(t, content.ContentHTML, "<img")
	})

	t.Run("keeps images when requested", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + longText + `</p><img src="x.png"></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{IncludeImages: true})
		assert.Contains(t, content.ContentHTML, "<img")
	})

	t.Run("replaces links with bare text by default", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + longText + `See <a href="/more">the details</a>.</p></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.NotContains(t, content.ContentHTML, "<a ")
		assert.Contains(t, content.PlainText, "the details")
	})

	t.Run("preserves links when requested", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + longText + `See <a href="/more">the details</a>.</p></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{PreserveLinks: true})
		assert.Contains(t, content.ContentHTML, `<a href="/more">`)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><article><p>" + longText + "</p><p>spread\n\t  out    words</p></article></body></html>"

		content := extract(t, html, digest.ExtractOptions{})
		assert.Contains(t, content.PlainText, "spread out words")
	})
}

func TestExtractor_Metadata(t *testing.T) {
	t.Parallel()

	t.Run("author from meta tag beats byline class", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="author" content="Jane Dev"></head>
			<body><span class="byline">Someone Else</span><p>text</p></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "Jane Dev", content.Author)
	})

	t.Run("author falls back to byline", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><span class="byline">John Writer</span><p>` + longText + `</p></article></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "John Writer", content.Author)
	})

	t.Run("publish date from meta tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="article:published_time" content="2024-06-15T10:30:00Z"></head>
			<body><p>text</p></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		require.NotNil(t, content.PublishedAt)
		assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), content.PublishedAt.UTC())
	})

	t.Run("invalid date is skipped silently", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="article:published_time" content="not a date"></head>
			<body><time datetime="2023-01-02">Jan 2</time><p>text</p></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		require.NotNil(t, content.PublishedAt)
		assert.Equal(t, 2023, content.PublishedAt.Year())
	})

	t.Run("no date yields nil without error", func(t *testing.T) {
		t.Parallel()

		content := extract(t, `<html><body><p>text</p></body></html>`, digest.ExtractOptions{})
		assert.Nil(t, content.PublishedAt)
	})

	t.Run("excerpt from description meta", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="description" content="A short description."></head>
			<body><p>text</p></body></html>`

		content := extract(t, html, digest.ExtractOptions{})
		assert.Equal(t, "A short description.", content.Excerpt)
	})
}

func TestExtractor_MinimalDocument(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>T</title></head><body><article><p>Hello world. This is a test article with enough text to pass the density threshold easily, many words here.</p></article></body></html>`

	content := extract(t, html, digest.ExtractOptions{})

	assert.Equal(t, "T", content.Title)
	assert.Contains(t, content.PlainText, "Hello world.")
}

func TestExtractor_ReportsProgress(t *testing.T) {
	t.Parallel()

	var events []digest.Progress
	e := goquery.NewExtractor(goquery.WithProgress(func(p digest.Progress) {
		events = append(events, p)
	}))

	_, err := e.Extract(`<html><body><p>x</p></body></html>`, "https://example.com", digest.ExtractOptions{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, digest.StageExtract, events[0].Stage)
}
