package digest

import (
	"context"
	"strings"
)

// Length selects how long the generated summary should be.
type Length string

// Length values accepted by SummarizeOptions.
const (
	LengthShort  Length = "short"  // 1-2 paragraphs
	LengthMedium Length = "medium" // 3-4 paragraphs
	LengthLong   Length = "long"   // 5-7 paragraphs
)

// ParseLength converts a string into a Length.
// Returns EINVALID for unrecognized values.
func ParseLength(s string) (Length, error) {
	switch Length(strings.ToLower(strings.TrimSpace(s))) {
	case LengthShort:
		return LengthShort, nil
	case LengthMedium:
		return LengthMedium, nil
	case LengthLong:
		return LengthLong, nil
	}
	return "", Errorf(EINVALID, "invalid summary length %q (want short, medium or long)", s)
}

// SummarizeOptions configure a summarization request.
type SummarizeOptions struct {
	// Length selects the summary length. Defaults to LengthMedium.
	Length Length

	// IncludeKeyPoints asks the model to append a labeled key-points
	// section, which is parsed into SummaryResult.KeyPoints.
	IncludeKeyPoints bool
}

// DegradedSummaryMessage is the summary text substituted when generation
// fails and the summarizer is configured to degrade instead of propagating
// the error.
const DegradedSummaryMessage = "Failed to generate summary."

// SummaryResult holds the generated summary and its parsed key points.
type SummaryResult struct {
	// Summary is the summary body text.
	Summary string

	// KeyPoints are the parsed key-point items, in response order.
	// Nil when the response contained no labeled key-points section.
	KeyPoints []string

	// OriginalWordCount is the whitespace-token count of the input text.
	OriginalWordCount int

	// SummaryWordCount is the whitespace-token count of the summary body.
	// Zero for a degraded result.
	SummaryWordCount int
}

// Degraded reports whether this result is the placeholder substituted after
// summarization failed.
func (r *SummaryResult) Degraded() bool {
	return r.Summary == DegradedSummaryMessage && r.SummaryWordCount == 0
}

// Summarizer generates a summary of article text via an AI service.
type Summarizer interface {
	// Summarize sends text to the AI service and returns the parsed
	// result. Depending on the implementation's failure policy, exhausted
	// retries either return an EAPI error or a degraded SummaryResult.
	Summarize(ctx context.Context, text string, opts SummarizeOptions) (*SummaryResult, error)
}

// keyPointHeadings are the labels recognized as the start of a key-points
// section, matched case-insensitively.
var keyPointHeadings = []string{
	"key points:",
	"main points:",
	"key takeaways:",
	"main takeaways:",
}

// ParseSummaryResponse splits a raw model response into the summary body and
// key points. The response is scanned case-insensitively for a key-points
// heading; everything before it is the summary, and bullet or numbered lines
// after the heading line become key points with their markers stripped. When
// no heading is present the whole response is the summary and keyPoints is
// nil.
func ParseSummaryResponse(text string) (summary string, keyPoints []string) {
	lower := strings.ToLower(text)

	idx := -1
	for _, heading := range keyPointHeadings {
		if i := strings.Index(lower, heading); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return strings.TrimSpace(text), nil
	}

	summary = strings.TrimSpace(text[:idx])

	// Drop the heading line itself, then collect list items.
	lines := strings.Split(text[idx:], "\n")
	for _, line := range lines[1:] {
		if item, ok := parseListItem(line); ok {
			keyPoints = append(keyPoints, item)
		}
	}

	return summary, keyPoints
}

// parseListItem strips a bullet ("-", "*", "•") or numbered ("1.", "2)")
// marker from a line. Returns false for lines that are not list items.
func parseListItem(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", false
	}

	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
		}
	}

	// Numbered items: digits followed by "." or ")".
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return strings.TrimSpace(s[i+1:]), true
	}

	return "", false
}

// CountWords counts non-empty whitespace-separated tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
