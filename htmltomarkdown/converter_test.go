package htmltomarkdown_test

import (
	"testing"

	"github.com/jboczar/digest/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "headings",
			html: "<h2>Section</h2><p>Body text.</p>",
			want: []string{"## Section", "Body text."},
		},
		{
			name: "unordered list",
			html: "<ul><li>First</li><li>Second</li></ul>",
			want: []string{"- First", "- Second"},
		},
		{
			name: "preformatted block becomes code fence",
			html: "<pre><code>fmt.Println(\"hi\")</code></pre>",
			want: []string{"```", "fmt.Println(\"hi\")"},
		},
		{
			name: "emphasis",
			html: "<p>This is <strong>bold</strong> and <em>italic</em>.</p>",
			want: []string{"**bold**", "*italic*"},
		},
		{
			name: "plain text passes through",
			html: "Just a sentence with no markup.",
			want: []string{"Just a sentence with no markup."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := htmltomarkdown.NewConverter()

			got, err := conv.Convert(tt.html)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()

	got, err := conv.Convert("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
