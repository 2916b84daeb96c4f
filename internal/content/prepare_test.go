package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareMarkdownPassesThrough(t *testing.T) {
	in := "# Heading\n\nBody text with <b>inline html</b> left alone.\n"
	out, err := Prepare("Notes/draft.md", in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPrepareUnknownExtensionPassesThrough(t *testing.T) {
	out, err := Prepare("Notes/plain.txt", "raw text")
	require.NoError(t, err)
	assert.Equal(t, "raw text", out)
}

func TestPrepareHTMLConvertsToMarkdown(t *testing.T) {
	in := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body><h1>Meeting Notes</h1><p>We discussed the <em>roadmap</em>.</p>
<script>alert("dropped")</script></body></html>`

	out, err := Prepare("Notes/imported.html", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Meeting Notes")
	assert.Contains(t, out, "roadmap")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "color:red")
}

func TestPrepareHTMLCaseInsensitiveExtension(t *testing.T) {
	out, err := Prepare("Notes/IMPORTED.HTML", "<p>hello</p>")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "<p>")
}

func TestHTMLToTextFallback(t *testing.T) {
	text := htmlToText("<div><p>first</p><p>second</p></div>")
	assert.Equal(t, "first\nsecond", text)
}
