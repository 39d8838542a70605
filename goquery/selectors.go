package goquery

// Ordered selector chains evaluated first-match-wins. Order matters: chains
// go from most specific to least specific.

// titleSelectors locate the article title, from headings explicitly tagged
// as article titles down to any top-level heading. The document <title> and
// the URL host are handled separately as final fallbacks.
var titleSelectors = []string{
	"h1.article-title",
	"h1.entry-title",
	"h1.post-title",
	"h1[itemprop='headline']",
	".article-header h1",
	"article h1",
	"header h1",
	"h1",
}

// defaultRemoveSelectors is the fixed boilerplate set stripped before
// content detection. Removal must precede the content search so paragraph
// density isn't skewed by comments, sidebars, and other non-article regions.
var defaultRemoveSelectors = []string{
	"script",
	"style",
	"noscript",
	"iframe",
	"nav",
	"header",
	"footer",
	"aside",
	".nav",
	".navbar",
	".menu",
	".header",
	".footer",
	".sidebar",
	".ad",
	".ads",
	".advertisement",
	".comments",
	".comment",
	".social",
	".share",
	".newsletter",
	".popup",
	".modal",
}

// contentSelectors locate the main article container, semantic containers
// first, generic page containers last.
var contentSelectors = []string{
	"article",
	"[role='main']",
	".article",
	".article-content",
	".article-body",
	".post",
	".post-content",
	".entry-content",
	".story-body",
	"main",
	"#content",
	".content",
}

// metaSelector pairs a CSS selector with the attribute holding the value;
// an empty attribute means the element text is used.
type metaSelector struct {
	selector string
	attr     string
}

// authorSelectors locate the article author, meta tags first.
var authorSelectors = []metaSelector{
	{selector: "meta[name='author']", attr: "content"},
	{selector: "meta[property='article:author']", attr: "content"},
	{selector: "[rel='author']"},
	{selector: "[itemprop='author']"},
	{selector: ".author"},
	{selector: ".byline"},
}

// dateSelectors locate the publish date, meta tags first.
var dateSelectors = []metaSelector{
	{selector: "meta[property='article:published_time']", attr: "content"},
	{selector: "meta[itemprop='datePublished']", attr: "content"},
	{selector: "meta[name='date']", attr: "content"},
	{selector: "time[datetime]", attr: "datetime"},
	{selector: "time"},
	{selector: ".published"},
	{selector: ".post-date"},
	{selector: ".date"},
}

// excerptSelectors locate a short article description, meta tags first.
var excerptSelectors = []metaSelector{
	{selector: "meta[name='description']", attr: "content"},
	{selector: "meta[property='og:description']", attr: "content"},
	{selector: ".excerpt"},
	{selector: ".summary"},
}
