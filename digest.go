// Package digest turns a web article into a summarized Markdown document.
// It fetches a page over HTTP, extracts the readable article content from
// the markup, asks a generative AI service for a summary, and renders the
// result as a Markdown file with a metadata header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, fs/).
package digest
