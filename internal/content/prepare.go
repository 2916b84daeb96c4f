// Package content prepares note text for the title prompt. Markdown notes
// pass through verbatim; HTML notes (imported vaults carry them) are reduced
// to markdown first so the model sees prose rather than markup.
package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Prepare returns the text to embed in the title prompt for the document at
// path. The full content is used; no truncation happens here or anywhere
// else before the request.
func Prepare(path, raw string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmlToMarkdown(raw)
	default:
		return raw, nil
	}
}

// htmlToMarkdown converts an HTML document to markdown. Script, style and
// head content is dropped first; when the converter fails, a bluemonday
// text-reduction pass keeps the document usable.
func htmlToMarkdown(html string) (string, error) {
	cleaned, err := stripNonContent(html)
	if err == nil {
		html = cleaned
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	markdown, err := conv.ConvertString(html)
	if err != nil {
		if text := htmlToText(html); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// stripNonContent removes the parts of an HTML document that carry no prose.
func stripNonContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, head, nav, noscript").Remove()
	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize HTML: %w", err)
	}
	return out, nil
}

// htmlToText is the fallback reduction: keep only paragraph structure and
// map it to newlines.
func htmlToText(html string) string {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br")
	sanitized := p.Sanitize(html)
	sanitized = strings.ReplaceAll(sanitized, "<p>", "\n")
	sanitized = strings.ReplaceAll(sanitized, "</p>", "")
	sanitized = strings.ReplaceAll(sanitized, "<br/>", "\n")
	return strings.TrimSpace(sanitized)
}
