// Package render turns user-authored markdown into sanitized HTML for read
// responses. Content is stored as the author wrote it; rendering happens on
// the way out.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/scorp5438/articles-app/internal/logger"
)

type TextProcessor struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	return &TextProcessor{
		md:        md,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to HTML and strips anything the UGC policy does
// not allow. On a markdown failure the sanitized raw text is returned so a
// bad article body never breaks a listing.
func (p *TextProcessor) Render(source string) string {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(source), &buf); err != nil {
		logger.Log.Error("markdown conversion failed", "error", err)
		return p.sanitizer.Sanitize(source)
	}
	return p.sanitizer.Sanitize(buf.String())
}
