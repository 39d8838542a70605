// Package fs provides file-based persistence for rendered documents.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jboczar/digest"
)

// DefaultDirName is the directory created under the working directory when
// no output directory is configured.
const DefaultDirName = "summaries"

// Slugify converts a title into a safe lowercase filename stem: letters and
// digits are kept, everything else collapses to single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Ensure Writer implements digest.DocumentWriter at compile time.
var _ digest.DocumentWriter = (*Writer)(nil)

// Writer writes rendered documents as UTF-8 markdown files.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer. Documents without an explicit path are
// written into baseDir.
func NewWriter(baseDir string) *Writer {
	if baseDir == "" {
		baseDir = DefaultDirName
	}
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes the document and returns the path it was written to.
// An empty path derives a filename from the slugified title (falling back
// to the URL host) inside the writer's base directory. Parent directories
// are created as needed. Write failures are EFILESYSTEM errors carrying the
// path; they are not retried.
func (w *Writer) WriteDocument(doc *digest.Document, path string) (string, error) {
	if doc == nil || doc.Body == "" {
		return "", digest.Errorf(digest.EINVALID, "document body required")
	}

	if path == "" {
		path = filepath.Join(w.baseDir, w.defaultName(doc)+".md")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", digest.WrapErrorf(err, digest.EFILESYSTEM, "failed to create directory %s", dir).
				WithContext("path", path)
		}
	}

	if err := os.WriteFile(path, []byte(doc.Body), 0644); err != nil {
		return "", digest.WrapErrorf(err, digest.EFILESYSTEM, "failed to write %s", path).
			WithContext("path", path)
	}

	return path, nil
}

// defaultName derives a filename stem from the document metadata.
func (w *Writer) defaultName(doc *digest.Document) string {
	if slug := Slugify(doc.Meta.Title); slug != "" {
		return slug
	}
	if u, err := url.Parse(doc.Meta.URL); err == nil && u.Host != "" {
		return Slugify(u.Host)
	}
	return "summary"
}
