package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jboczar/digest"
	"github.com/jboczar/digest/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "Hello World", want: "hello-world"},
		{name: "punctuation collapses", title: "Go 1.22: What's New?", want: "go-1-22-what-s-new"},
		{name: "leading and trailing junk", title: "  --Title--  ", want: "title"},
		{name: "uppercase lowered", title: "UPPER Case", want: "upper-case"},
		{name: "empty title", title: "", want: ""},
		{name: "only punctuation", title: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.Slugify(tt.title))
		})
	}
}

func testDocument() *digest.Document {
	return digest.RenderDocument(
		&digest.SummaryResult{Summary: "A summary.", SummaryWordCount: 2},
		digest.Metadata{
			Title: "Test Article",
			URL:   "https://example.com/test",
			Date:  time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		},
	)
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes to explicit path creating parents", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)
		target := filepath.Join(baseDir, "nested", "dir", "out.md")

		got, err := w.WriteDocument(testDocument(), target)

		require.NoError(t, err)
		assert.Equal(t, target, got)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Test Article")
	})

	t.Run("derives filename from slugified title", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		got, err := w.WriteDocument(testDocument(), "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "test-article.md"), got)
		assert.FileExists(t, got)
	})

	t.Run("falls back to URL host when title empty", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		doc := digest.RenderDocument(
			&digest.SummaryResult{Summary: "Body."},
			digest.Metadata{URL: "https://example.com/x", Date: time.Now()},
		)

		got, err := w.WriteDocument(doc, "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "example-com.md"), got)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteDocument(&digest.Document{}, "")

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})

	t.Run("classifies write failure as filesystem error", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("permission bits unreliable on windows")
		}
		if os.Getuid() == 0 {
			t.Skip("running as root, permissions not enforced")
		}

		baseDir := t.TempDir()
		readonly := filepath.Join(baseDir, "readonly")
		require.NoError(t, os.MkdirAll(readonly, 0555))

		w := fs.NewWriter(baseDir)

		_, err := w.WriteDocument(testDocument(), filepath.Join(readonly, "out.md"))

		require.Error(t, err)
		assert.Equal(t, digest.EFILESYSTEM, digest.ErrorCode(err))
		assert.Equal(t, filepath.Join(readonly, "out.md"), digest.ErrorContext(err)["path"])
	})
}
