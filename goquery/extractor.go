// Package goquery provides the heuristic implementation of digest.Extractor.
// It locates the main article content via ordered CSS selector chains with a
// paragraph-density fallback, strips boilerplate, and pulls auxiliary
// metadata (author, publish date, excerpt) out of the document.
package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/jboczar/digest"
	"golang.org/x/net/html"
)

// minContentChars is the visible-text length a semantic container must
// exceed to be accepted as the main content.
const minContentChars = 200

// minParagraphs is the paragraph count a density-fallback candidate must
// exceed to be accepted.
const minParagraphs = 2

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor extracts main article content from HTML using CSS selector
// heuristics.
type Extractor struct {
	progress digest.ProgressFunc
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithProgress sets the progress callback.
func WithProgress(fn digest.ProgressFunc) Option {
	return func(e *Extractor) {
		e.progress = fn
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main article content.
//
// Auxiliary metadata is read from the full document first, then boilerplate
// is removed, then the main content container is located and cleaned. An
// empty document yields an empty ExtractedContent rather than an error.
func (e *Extractor) Extract(rawHTML string, pageURL string, opts digest.ExtractOptions) (*digest.ExtractedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, digest.WrapErrorf(err, digest.EINVALID, "failed to parse HTML")
	}

	if e.progress != nil {
		e.progress(digest.Progress{Stage: digest.StageExtract, Message: "extracting content"})
	}

	content := &digest.ExtractedContent{
		Title:       resolveTitle(doc, pageURL),
		Excerpt:     resolveMeta(doc, excerptSelectors),
		Author:      resolveMeta(doc, authorSelectors),
		PublishedAt: resolveDate(doc),
	}

	removeBoilerplate(doc, opts.RemoveSelectors)

	main := findMainContent(doc)
	if main == nil || main.Length() == 0 {
		return content, nil
	}

	cleanContent(main, opts)

	contentHTML, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, digest.WrapErrorf(err, digest.EINTERNAL, "failed to render content")
	}
	content.ContentHTML = contentHTML
	content.PlainText = strings.TrimSpace(main.Text())

	return content, nil
}

// resolveTitle tries the title selector chain, then the document <title>,
// then the URL host. First non-empty match wins.
func resolveTitle(doc *goquery.Document, pageURL string) string {
	for _, selector := range titleSelectors {
		if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
			return collapseSpace(title)
		}
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return collapseSpace(title)
	}

	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		return u.Host
	}

	return ""
}

// resolveMeta returns the first non-empty value from an ordered selector
// preference list.
func resolveMeta(doc *goquery.Document, selectors []metaSelector) string {
	for _, ms := range selectors {
		sel := doc.Find(ms.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if ms.attr != "" {
			value, _ = sel.Attr(ms.attr)
		} else {
			value = sel.Text()
		}

		if value = collapseSpace(strings.TrimSpace(value)); value != "" {
			return value
		}
	}
	return ""
}

// resolveDate walks the date selector chain, parsing each candidate value.
// Unparseable candidates are skipped silently, not surfaced as errors.
func resolveDate(doc *goquery.Document) *time.Time {
	for _, ms := range dateSelectors {
		var found *time.Time
		doc.Find(ms.selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			var value string
			if ms.attr != "" {
				value, _ = sel.Attr(ms.attr)
			} else {
				value = sel.Text()
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return true
			}

			parsed, err := dateparse.ParseAny(value)
			if err != nil {
				return true
			}
			found = &parsed
			return false
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// removeBoilerplate strips the default non-content element set plus any
// caller-supplied selectors.
func removeBoilerplate(doc *goquery.Document, extra []string) {
	for _, selector := range defaultRemoveSelectors {
		doc.Find(selector).Remove()
	}
	for _, selector := range extra {
		doc.Find(selector).Remove()
	}
}

// findMainContent locates the main article container. Semantic containers
// are tried first; if none qualifies, the densest paragraph container wins;
// the whole body is the last resort. Returns nil when the document has no
// body at all.
func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(sel.Text())) > minContentChars {
			return sel
		}
	}

	if sel := densestContainer(doc); sel != nil {
		return sel
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}
	return body
}

// densestContainer scans block-level containers in the body and returns the
// one with the most paragraph descendants, provided the count exceeds
// minParagraphs. Ties keep the first candidate in document order.
func densestContainer(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestCount := 0

	doc.Find("body").Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		if count := sel.Find("p").Length(); count > bestCount {
			best = sel
			bestCount = count
		}
	})

	if bestCount > minParagraphs {
		return best
	}
	return nil
}

// cleanContent normalizes the selected container in place: drops empty
// paragraphs, drops images unless requested, replaces links with their bare
// text unless requested, and collapses whitespace runs in every text node.
func cleanContent(sel *goquery.Selection, opts digest.ExtractOptions) {
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		if strings.TrimSpace(p.Text()) == "" && p.Find("img").Length() == 0 {
			p.Remove()
		}
	})

	if !opts.IncludeImages {
		sel.Find("img").Remove()
	}

	if !opts.PreserveLinks {
		sel.Find("a").Each(func(_ int, a *goquery.Selection) {
			a.ReplaceWithHtml(html.EscapeString(a.Text()))
		})
	}

	for _, node := range sel.Nodes {
		collapseTextNodes(node)
	}
}

var spaceRun = regexp.MustCompile(`\s+`)

// collapseSpace collapses whitespace runs to single spaces.
func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// collapseTextNodes collapses whitespace runs in every text node under n.
func collapseTextNodes(n *html.Node) {
	if n.Type == html.TextNode {
		n.Data = collapseSpace(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collapseTextNodes(c)
	}
}
